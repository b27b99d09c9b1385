package health

import (
	"context"
	"time"

	"github.com/adityarizkyr/health-tracker/cmd/config"
	"github.com/adityarizkyr/health-tracker/constant"
	"github.com/adityarizkyr/health-tracker/model"
	"github.com/adityarizkyr/health-tracker/repository/dbutil"
	healthrepo "github.com/adityarizkyr/health-tracker/repository/health"
	userrepo "github.com/adityarizkyr/health-tracker/repository/user"
	"github.com/adityarizkyr/health-tracker/thirdparty/gemini"
	"github.com/adityarizkyr/health-tracker/thirdparty/rabbitmq"
	"github.com/adityarizkyr/health-tracker/utils/errors"
	"github.com/adityarizkyr/health-tracker/utils/logger"
	validatorx "github.com/adityarizkyr/health-tracker/utils/validator"
	"go.uber.org/zap"
)

const (
	defaultEntryLimit = 30
	maxEntryLimit     = 100

	suggestionContextDays = 7
)

type HealthApp interface {
	SubmitDailyEntry(ctx context.Context, userID uint64, req *model.DailyEntryRequest) (*model.SubmitDailyEntryResponse, error)
	GetDailyEntries(ctx context.Context, userID uint64, limit int) (*model.DailyEntriesResponse, error)
	GetDailySuggestion(ctx context.Context, userID uint64) (*model.SuggestionResponse, error)
}

type HealthAppImpl struct {
	config     *config.Config
	userRepo   userrepo.UserRepository
	healthRepo healthrepo.HealthRepository
	generator  gemini.Generator
	publisher  *rabbitmq.Publisher
}

func NewHealthApp(config *config.Config, userRepo userrepo.UserRepository, healthRepo healthrepo.HealthRepository, generator gemini.Generator, publisher *rabbitmq.Publisher) HealthApp {
	return &HealthAppImpl{
		config:     config,
		userRepo:   userRepo,
		healthRepo: healthRepo,
		generator:  generator,
		publisher:  publisher,
	}
}

func (s *HealthAppImpl) SubmitDailyEntry(ctx context.Context, userID uint64, req *model.DailyEntryRequest) (*model.SubmitDailyEntryResponse, error) {
	input, err := validatorx.ValidateDailyEntry(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.healthRepo.GetEntryByDate(ctx, userID, input.Date)
	if err != nil {
		logger.Error("[SubmitDailyEntry] err healthRepo.GetEntryByDate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}
	if existing != nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrConflict, "Entry already exists for this date")
	}

	entry := &model.DailyEntryEntity{
		UserID:    userID,
		EntryDate: input.Date,
		Height:    input.Height,
		Weight:    input.Weight,
		Breakfast: input.Breakfast,
		Lunch:     input.Lunch,
		Dinner:    input.Dinner,
	}

	entry, err = s.healthRepo.CreateEntry(ctx, entry)
	if err != nil {
		// Concurrent submissions for the same date pass the existence
		// check above; the (user_id, entry_date) unique index turns the
		// loser into a conflict instead of a duplicate row.
		if dbutil.IsDuplicateKey(err) {
			return nil, errors.SetCustomErrorWithMessage(constant.ErrConflict, "Entry already exists for this date")
		}
		logger.Error("[SubmitDailyEntry] err healthRepo.CreateEntry", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	logger.Info("[SubmitDailyEntry] entry created",
		zap.Uint64("user_id", userID),
		zap.String("date", input.Date.Format(constant.DateLayout)),
	)
	s.publishAction(userID, constant.ActionDailyEntryCreated, "Created entry for "+input.Date.Format(constant.DateLayout))

	return &model.SubmitDailyEntryResponse{
		EntryID: entry.ID,
	}, nil
}

func (s *HealthAppImpl) GetDailyEntries(ctx context.Context, userID uint64, limit int) (*model.DailyEntriesResponse, error) {
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	if limit > maxEntryLimit {
		limit = maxEntryLimit
	}

	entries, err := s.healthRepo.ListEntries(ctx, userID, limit)
	if err != nil {
		logger.Error("[GetDailyEntries] err healthRepo.ListEntries", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	items := make([]model.DailyEntryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, model.DailyEntryItem{
			ID:        entry.ID,
			Date:      entry.EntryDate.Format(constant.DateLayout),
			Height:    entry.Height,
			Weight:    entry.Weight,
			Breakfast: entry.Breakfast,
			Lunch:     entry.Lunch,
			Dinner:    entry.Dinner,
			CreatedAt: entry.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return &model.DailyEntriesResponse{
		Entries:    items,
		TotalCount: len(items),
	}, nil
}

func (s *HealthAppImpl) GetDailySuggestion(ctx context.Context, userID uint64) (*model.SuggestionResponse, error) {
	if s.generator == nil || !s.generator.IsAvailable() {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrServiceUnavailable, "Health suggestions are currently unavailable")
	}

	// One suggestion per UTC calendar day.
	today := time.Now().UTC().Truncate(24 * time.Hour)

	existing, err := s.healthRepo.GetSuggestionByDate(ctx, userID, today)
	if err != nil {
		logger.Error("[GetDailySuggestion] err healthRepo.GetSuggestionByDate", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}
	if existing != nil {
		return &model.SuggestionResponse{
			Suggestion:      existing.Suggestion,
			AlreadyReceived: true,
		}, nil
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetDailySuggestion] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}
	if user == nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrNotFound, "User not found")
	}

	recentEntries, err := s.healthRepo.ListEntries(ctx, userID, suggestionContextDays)
	if err != nil {
		logger.Error("[GetDailySuggestion] err healthRepo.ListEntries", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	suggestionText, err := s.generator.GenerateHealthSuggestion(ctx, user, recentEntries)
	if err != nil {
		logger.Error("[GetDailySuggestion] err generator.GenerateHealthSuggestion", zap.String("error", err.Error()))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrServiceUnavailable, "Health suggestions are currently unavailable")
	}

	suggestion := &model.SuggestionEntity{
		UserID:         userID,
		SuggestionDate: today,
		Suggestion:     suggestionText,
	}

	if _, err := s.healthRepo.CreateSuggestion(ctx, suggestion); err != nil {
		// A concurrent first request won the insert; serve its stored
		// suggestion so the day stays idempotent.
		if dbutil.IsDuplicateKey(err) {
			stored, getErr := s.healthRepo.GetSuggestionByDate(ctx, userID, today)
			if getErr == nil && stored != nil {
				return &model.SuggestionResponse{
					Suggestion:      stored.Suggestion,
					AlreadyReceived: true,
				}, nil
			}
		}
		logger.Error("[GetDailySuggestion] err healthRepo.CreateSuggestion", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	logger.Info("[GetDailySuggestion] suggestion generated", zap.Uint64("user_id", userID))
	s.publishAction(userID, constant.ActionSuggestionGenerated, "Generated daily health suggestion")

	return &model.SuggestionResponse{
		Suggestion:      suggestionText,
		AlreadyReceived: false,
	}, nil
}

func (s *HealthAppImpl) publishAction(userID uint64, action, detail string) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.UserActionMessage{
		UserID: userID,
		Action: action,
		Detail: detail,
		At:     time.Now().UTC(),
	}
	if err := s.publisher.PublishUserAction(msg); err != nil {
		logger.Error("[publishAction] publish user action", zap.String("error", err.Error()))
	}
}
