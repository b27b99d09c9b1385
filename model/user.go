package model

import "time"

// UserEntity represents the user table entity
type UserEntity struct {
	ID               uint64     `db:"id" json:"id"`
	Email            string     `db:"email" json:"email"`
	Username         string     `db:"username" json:"username"`
	PasswordHash     string     `db:"password_hash" json:"-"`
	ProfileCompleted bool       `db:"profile_completed" json:"profile_completed"`
	BirthDate        *time.Time `db:"birth_date" json:"birth_date,omitempty"`
	InitialHeight    *float64   `db:"initial_height" json:"initial_height,omitempty"`
	InitialWeight    *float64   `db:"initial_weight" json:"initial_weight,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// UserFilter for querying users
type UserFilter struct {
	ID       uint64
	Email    string
	Username string
}

// ProfileUpdate carries the validated fields persisted on profile submission.
type ProfileUpdate struct {
	BirthDate     time.Time
	InitialHeight float64
	InitialWeight float64
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterResponse struct {
	UserID uint64 `json:"user_id"`
}

// LoginRequest accepts an email or a username as identifier
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token            string `json:"access_token"`
	UserID           uint64 `json:"user_id"`
	ProfileCompleted bool   `json:"profile_completed"`
}

// ProfileResponse is the user record without the password hash.
// Dates are rendered as YYYY-MM-DD, timestamps as RFC 3339.
type ProfileResponse struct {
	ID               uint64   `json:"id"`
	Email            string   `json:"email"`
	Username         string   `json:"username"`
	ProfileCompleted bool     `json:"profile_completed"`
	BirthDate        string   `json:"birth_date,omitempty"`
	InitialHeight    *float64 `json:"initial_height,omitempty"`
	InitialWeight    *float64 `json:"initial_weight,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at,omitempty"`
}

// UpdateProfileRequest for profile completion
type UpdateProfileRequest struct {
	BirthDate     string      `json:"birth_date" validate:"required"`
	InitialHeight interface{} `json:"initial_height" validate:"required"`
	InitialWeight interface{} `json:"initial_weight" validate:"required"`
}

// DeleteAccountRequest requires password re-confirmation
type DeleteAccountRequest struct {
	Password string `json:"password" validate:"required"`
}
