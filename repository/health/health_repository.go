package health

import (
	"context"
	"database/sql"
	"time"

	"github.com/adityarizkyr/health-tracker/constant"
	"github.com/adityarizkyr/health-tracker/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type HealthRepository interface {
	CreateEntry(ctx context.Context, entry *model.DailyEntryEntity) (*model.DailyEntryEntity, error)
	GetEntryByDate(ctx context.Context, userID uint64, date time.Time) (*model.DailyEntryEntity, error)
	ListEntries(ctx context.Context, userID uint64, limit int) ([]model.DailyEntryEntity, error)
	DeleteEntriesByUserTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (int64, error)
	CreateSuggestion(ctx context.Context, suggestion *model.SuggestionEntity) (*model.SuggestionEntity, error)
	GetSuggestionByDate(ctx context.Context, userID uint64, date time.Time) (*model.SuggestionEntity, error)
	DeleteSuggestionsByUserTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (int64, error)
}

func NewHealthRepository(conn *sqlx.DB) HealthRepository {
	return &SQL{conn: conn}
}

const (
	insertEntryQuery = `INSERT INTO daily_entry (user_id, entry_date, height, weight, breakfast, lunch, dinner, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())`
	getEntryByDate   = `SELECT id, user_id, entry_date, height, weight, breakfast, lunch, dinner, created_at FROM daily_entry WHERE user_id = ? AND entry_date = ?`
	listEntries      = `SELECT id, user_id, entry_date, height, weight, breakfast, lunch, dinner, created_at FROM daily_entry WHERE user_id = ? ORDER BY entry_date DESC LIMIT ?`
	deleteEntries    = `DELETE FROM daily_entry WHERE user_id = ?`

	insertSuggestionQuery = `INSERT INTO health_suggestion (user_id, suggestion_date, suggestion, created_at) VALUES (?, ?, ?, NOW())`
	getSuggestionByDate   = `SELECT id, user_id, suggestion_date, suggestion, created_at FROM health_suggestion WHERE user_id = ? AND suggestion_date = ?`
	deleteSuggestions     = `DELETE FROM health_suggestion WHERE user_id = ?`
)

func (s *SQL) CreateEntry(ctx context.Context, entry *model.DailyEntryEntity) (*model.DailyEntryEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertEntryQuery,
		entry.UserID, entry.EntryDate.Format(constant.DateLayout),
		entry.Height, entry.Weight, entry.Breakfast, entry.Lunch, entry.Dinner)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	entry.ID = uint64(lastID)
	return entry, nil
}

func (s *SQL) GetEntryByDate(ctx context.Context, userID uint64, date time.Time) (*model.DailyEntryEntity, error) {
	var entity model.DailyEntryEntity
	err := s.conn.QueryRowxContext(ctx, getEntryByDate, userID, date.Format(constant.DateLayout)).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) ListEntries(ctx context.Context, userID uint64, limit int) ([]model.DailyEntryEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, listEntries, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.DailyEntryEntity, 0)
	for rows.Next() {
		var entity model.DailyEntryEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		entries = append(entries, entity)
	}
	return entries, rows.Err()
}

func (s *SQL) DeleteEntriesByUserTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (int64, error) {
	result, err := tx.ExecContext(ctx, deleteEntries, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (s *SQL) CreateSuggestion(ctx context.Context, suggestion *model.SuggestionEntity) (*model.SuggestionEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertSuggestionQuery,
		suggestion.UserID, suggestion.SuggestionDate.Format(constant.DateLayout), suggestion.Suggestion)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	suggestion.ID = uint64(lastID)
	return suggestion, nil
}

func (s *SQL) GetSuggestionByDate(ctx context.Context, userID uint64, date time.Time) (*model.SuggestionEntity, error) {
	var entity model.SuggestionEntity
	err := s.conn.QueryRowxContext(ctx, getSuggestionByDate, userID, date.Format(constant.DateLayout)).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) DeleteSuggestionsByUserTx(ctx context.Context, tx *sqlx.Tx, userID uint64) (int64, error) {
	result, err := tx.ExecContext(ctx, deleteSuggestions, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
