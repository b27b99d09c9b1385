package user

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adityarizkyr/health-tracker/cmd/config"
	"github.com/adityarizkyr/health-tracker/constant"
	"github.com/adityarizkyr/health-tracker/model"
	"github.com/adityarizkyr/health-tracker/repository/dbutil"
	healthrepo "github.com/adityarizkyr/health-tracker/repository/health"
	redisrepo "github.com/adityarizkyr/health-tracker/repository/redis"
	txrepo "github.com/adityarizkyr/health-tracker/repository/tx"
	userrepo "github.com/adityarizkyr/health-tracker/repository/user"
	"github.com/adityarizkyr/health-tracker/thirdparty/rabbitmq"
	"github.com/adityarizkyr/health-tracker/utils/errors"
	"github.com/adityarizkyr/health-tracker/utils/logger"
	validatorx "github.com/adityarizkyr/health-tracker/utils/validator"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
	GetProfile(ctx context.Context, userID uint64) (*model.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) error
	DeleteAccount(ctx context.Context, userID uint64, password string) error
}

type UserAppImpl struct {
	config     *config.Config
	userRepo   userrepo.UserRepository
	healthRepo healthrepo.HealthRepository
	txRepo     txrepo.TxRepository
	redisRepo  redisrepo.Repository
	publisher  *rabbitmq.Publisher
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, healthRepo healthrepo.HealthRepository, txRepo txrepo.TxRepository, redisRepo redisrepo.Repository, publisher *rabbitmq.Publisher) UserApp {
	return &UserAppImpl{
		config:     config,
		userRepo:   userRepo,
		healthRepo: healthRepo,
		txRepo:     txRepo,
		redisRepo:  redisRepo,
		publisher:  publisher,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	validated, err := validatorx.ValidateRegistration(req)
	if err != nil {
		return nil, err
	}

	// Both uniqueness lookups run so duplicate email and duplicate
	// username remain distinguishable in the logs.
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: validated.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}
	if existingUser != nil {
		logger.Info("[Register] duplicate email", zap.String("email", validated.Email))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrConflict, "Email already registered")
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Username: validated.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Get username", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}
	if existingUser != nil {
		logger.Info("[Register] duplicate username", zap.String("username", validated.Username))
		return nil, errors.SetCustomErrorWithMessage(constant.ErrConflict, "Username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(validated.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Email:        validated.Email,
		Username:     validated.Username,
		PasswordHash: string(hashedPassword),
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		// The unique indexes on email and username close the
		// check-then-act window above.
		if dbutil.IsDuplicateKey(err) {
			return nil, errors.SetCustomErrorWithMessage(constant.ErrConflict, "Email or username already taken")
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	logger.Info("[Register] user registered", zap.Uint64("user_id", userEntity.ID), zap.String("username", validated.Username))
	s.publishAction(userEntity.ID, constant.ActionUserRegistered, "User "+validated.Username+" registered")

	return &model.RegisterResponse{
		UserID: userEntity.ID,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, errors.SetValidationError("Username and password required", "identifier")
	}

	// Emails are stored lowercased at registration, so the lookup has to
	// normalize the same way.
	filter := &model.UserFilter{}
	if strings.Contains(identifier, "@") {
		filter.Email = strings.ToLower(identifier)
	} else {
		filter.Username = identifier
	}

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}

	// Unknown identifier and wrong password must be indistinguishable to
	// the caller.
	if user == nil {
		logger.Info("[Login] unknown identifier", zap.String("identifier", identifier))
		return nil, errors.SetCustomError(constant.ErrAuthentication)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Info("[Login] password mismatch", zap.Uint64("user_id", user.ID))
		return nil, errors.SetCustomError(constant.ErrAuthentication)
	}

	token, jti, err := s.generateJWT(user.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	s.publishAction(user.ID, constant.ActionLogin, "User "+user.Username+" logged in")

	return &model.LoginResponse{
		Token:            token,
		UserID:           user.ID,
		ProfileCompleted: user.ProfileCompleted,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, fmt.Errorf("token does not match user session")
	}

	return userID, nil
}

func (s *UserAppImpl) GetProfile(ctx context.Context, userID uint64) (*model.ProfileResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetProfile] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDatabase)
	}
	if user == nil {
		return nil, errors.SetCustomErrorWithMessage(constant.ErrNotFound, "User not found")
	}

	profile := &model.ProfileResponse{
		ID:               user.ID,
		Email:            user.Email,
		Username:         user.Username,
		ProfileCompleted: user.ProfileCompleted,
		InitialHeight:    user.InitialHeight,
		InitialWeight:    user.InitialWeight,
		CreatedAt:        user.CreatedAt.UTC().Format(time.RFC3339),
	}
	if user.BirthDate != nil {
		profile.BirthDate = user.BirthDate.Format(constant.DateLayout)
	}
	if user.UpdatedAt != nil {
		profile.UpdatedAt = user.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return profile, nil
}

func (s *UserAppImpl) UpdateProfile(ctx context.Context, userID uint64, req *model.UpdateProfileRequest) error {
	update, err := validatorx.ValidateProfile(req)
	if err != nil {
		return err
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[UpdateProfile] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}
	if user == nil {
		return errors.SetCustomErrorWithMessage(constant.ErrNotFound, "User not found")
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, update); err != nil {
		logger.Error("[UpdateProfile] err userRepo.UpdateProfile", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}

	logger.Info("[UpdateProfile] profile completed", zap.Uint64("user_id", userID))
	s.publishAction(userID, constant.ActionProfileUpdated, "User completed profile setup")
	return nil
}

func (s *UserAppImpl) DeleteAccount(ctx context.Context, userID uint64, password string) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[DeleteAccount] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}
	if user == nil {
		return errors.SetCustomErrorWithMessage(constant.ErrNotFound, "User not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return errors.SetCustomErrorWithMessage(constant.ErrAuthentication, "Invalid password")
	}

	// Dependent records and the user row go in one transaction; a crash
	// mid-sequence must not leave orphaned entries or suggestions.
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[DeleteAccount] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entryCount, err := s.healthRepo.DeleteEntriesByUserTx(ctx, tx, userID)
	if err != nil {
		logger.Error("[DeleteAccount] delete entries", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}

	suggestionCount, err := s.healthRepo.DeleteSuggestionsByUserTx(ctx, tx, userID)
	if err != nil {
		logger.Error("[DeleteAccount] delete suggestions", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}

	if err := s.userRepo.DeleteTx(ctx, tx, userID); err != nil {
		logger.Error("[DeleteAccount] delete user", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[DeleteAccount] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrDatabase)
	}
	committed = true

	logger.Info("[DeleteAccount] account deleted",
		zap.Uint64("user_id", userID),
		zap.Int64("entries", entryCount),
		zap.Int64("suggestions", suggestionCount),
	)
	s.publishAction(userID, constant.ActionAccountDeleted, "User account and all data deleted")
	return nil
}

// generateJWT creates a JWT token for the user
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

func (s *UserAppImpl) publishAction(userID uint64, action, detail string) {
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
