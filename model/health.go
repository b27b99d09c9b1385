package model

import "time"

// DailyEntryEntity represents one health record per user per calendar date
type DailyEntryEntity struct {
	ID        uint64    `db:"id" json:"id"`
	UserID    uint64    `db:"user_id" json:"user_id"`
	EntryDate time.Time `db:"entry_date" json:"-"`
	Height    float64   `db:"height" json:"height"`
	Weight    float64   `db:"weight" json:"weight"`
	Breakfast string    `db:"breakfast" json:"breakfast"`
	Lunch     string    `db:"lunch" json:"lunch"`
	Dinner    string    `db:"dinner" json:"dinner"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// SuggestionEntity holds at most one AI suggestion per user per calendar date
type SuggestionEntity struct {
	ID             uint64    `db:"id" json:"id"`
	UserID         uint64    `db:"user_id" json:"user_id"`
	SuggestionDate time.Time `db:"suggestion_date" json:"-"`
	Suggestion     string    `db:"suggestion" json:"suggestion"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// DailyEntryRequest carries the raw submission. Height and weight stay
// untyped until the validator normalizes them; date is a YYYY-MM-DD string.
type DailyEntryRequest struct {
	Date      string      `json:"date" validate:"required"`
	Height    interface{} `json:"height" validate:"required"`
	Weight    interface{} `json:"weight" validate:"required"`
	Breakfast string      `json:"breakfast" validate:"required"`
	Lunch     string      `json:"lunch" validate:"required"`
	Dinner    string      `json:"dinner" validate:"required"`
}

// DailyEntryInput is the validated, fully typed form of DailyEntryRequest.
type DailyEntryInput struct {
	Date      time.Time
	Height    float64
	Weight    float64
	Breakfast string
	Lunch     string
	Dinner    string
}

type SubmitDailyEntryResponse struct {
	EntryID uint64 `json:"entry_id"`
}

// DailyEntryItem is one entry as rendered at the API boundary.
type DailyEntryItem struct {
	ID        uint64  `json:"id"`
	Date      string  `json:"date"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	Breakfast string  `json:"breakfast"`
	Lunch     string  `json:"lunch"`
	Dinner    string  `json:"dinner"`
	CreatedAt string  `json:"created_at"`
}

type DailyEntriesResponse struct {
	Entries    []DailyEntryItem `json:"data"`
	TotalCount int              `json:"total_count"`
}

type SuggestionResponse struct {
	Suggestion      string `json:"suggestion"`
	AlreadyReceived bool   `json:"already_received"`
}
