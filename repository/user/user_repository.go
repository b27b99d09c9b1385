package user

import (
	"context"
	"database/sql"

	"github.com/adityarizkyr/health-tracker/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	UpdateProfile(ctx context.Context, userID uint64, update *model.ProfileUpdate) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO user (email, username, password_hash, profile_completed, created_at) VALUES (?, ?, ?, false, NOW())`
	getUserBase     = `SELECT id, email, username, password_hash, profile_completed, birth_date, initial_height, initial_weight, created_at, updated_at FROM user WHERE true`
	updateProfile   = `UPDATE user SET birth_date = ?, initial_height = ?, initial_weight = ?, profile_completed = true, updated_at = NOW() WHERE id = ?`
	deleteUserQuery = `DELETE FROM user WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Email, data.Username, data.PasswordHash)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Username != "" {
		query += " AND username = ?"
		args = append(args, filter.Username)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) UpdateProfile(ctx context.Context, userID uint64, update *model.ProfileUpdate) error {
	_, err := s.conn.ExecContext(ctx, updateProfile,
		update.BirthDate, update.InitialHeight, update.InitialWeight, userID)
	return err
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, userID uint64) error {
	_, err := tx.ExecContext(ctx, deleteUserQuery, userID)
	return err
}
