package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	appuser "github.com/adityarizkyr/health-tracker/application/user"
	"github.com/adityarizkyr/health-tracker/cmd/config"
	"github.com/adityarizkyr/health-tracker/constant"
	healthmocks "github.com/adityarizkyr/health-tracker/mocks/repository/health"
	redismocks "github.com/adityarizkyr/health-tracker/mocks/repository/redis"
	txmocks "github.com/adityarizkyr/health-tracker/mocks/repository/tx"
	usermocks "github.com/adityarizkyr/health-tracker/mocks/repository/user"
	"github.com/adityarizkyr/health-tracker/model"
	cerr "github.com/adityarizkyr/health-tracker/utils/errors"
	"github.com/go-sql-driver/mysql"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-key-for-jwt-signing",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		config     *config.Config
		userRepo   *usermocks.UserRepository
		healthRepo *healthmocks.HealthRepository
		txRepo     *txmocks.TxRepository
		redisRepo  *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.RegisterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.RegisterResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register new user",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Email:    "Test@Example.com",
					Username: "testuser",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				// Email is lowercased before the lookup
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "testuser"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.UserEntity) bool {
						return ent.Email == "test@example.com" &&
							ent.Username == "testuser" &&
							ent.PasswordHash != "" &&
							ent.PasswordHash != "password123"
					})).
					Return(&model.UserEntity{
						ID:           1,
						Email:        "test@example.com",
						Username:     "testuser",
						PasswordHash: "hashed_password",
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			want: &model.RegisterResponse{
				UserID: 1,
			},
			wantErr: false,
		},
		{
			name: "error: email already registered",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Email:    "existing@example.com",
					Username: "newuser",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "existing@example.com"}).
					Return(&model.UserEntity{
						ID:    1,
						Email: "existing@example.com",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: username already taken",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Email:    "new@example.com",
					Username: "existinguser",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "new@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "existinguser"}).
					Return(&model.UserEntity{
						ID:       2,
						Username: "existinguser",
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: invalid email format",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Email:    "not-an-email",
					Username: "testuser",
					Password: "password123",
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: username contains @",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Email:    "test@example.com",
					Username: "user@name",
					Password: "password123",
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: password too short",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Email:    "test@example.com",
					Username: "testuser",
					Password: "12345",
				},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: concurrent duplicate caught by unique index",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Email:    "test@example.com",
					Username: "testuser",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "testuser"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: create fails",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.RegisterRequest{
					Email:    "test@example.com",
					Username: "testuser",
					Password: "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "testuser"}).
					Return(nil, nil).
					Once()

				f.userRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
					Return(nil, errors.New("create failed")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrDatabase,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.healthRepo, tt.fields.txRepo, tt.fields.redisRepo, nil)

			got, err := app.Register(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Register() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	type fields struct {
		config     *config.Config
		userRepo   *usermocks.UserRepository
		healthRepo *healthmocks.HealthRepository
		txRepo     *txmocks.TxRepository
		redisRepo  *redismocks.Repository
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.LoginResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login with email",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "test@example.com",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:               1,
						Email:            "test@example.com",
						Username:         "testuser",
						PasswordHash:     string(hashedPassword),
						ProfileCompleted: true,
						CreatedAt:        time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				UserID:           1,
				ProfileCompleted: true,
			},
			wantErr: false,
		},
		{
			name: "success: mixed-case email matches stored lowercase email",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "Test@Example.com",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				// Registration lowercases the email; login must look it up
				// the same way.
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Email: "test@example.com"}).
					Return(&model.UserEntity{
						ID:               1,
						Email:            "test@example.com",
						Username:         "testuser",
						PasswordHash:     string(hashedPassword),
						ProfileCompleted: true,
						CreatedAt:        time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				UserID:           1,
				ProfileCompleted: true,
			},
			wantErr: false,
		},
		{
			name: "success: login with username",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "testuser",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "testuser"}).
					Return(&model.UserEntity{
						ID:           2,
						Email:        "test@example.com",
						Username:     "testuser",
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				f.redisRepo.
					On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(2), time.Hour).
					Return(nil).
					Once()
			},
			want: &model.LoginResponse{
				UserID:           2,
				ProfileCompleted: false,
			},
			wantErr: false,
		},
		{
			name: "error: empty credentials",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: unknown identifier",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "ghost",
					Password:   "password123",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "ghost"}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrAuthentication,
		},
		{
			name: "error: wrong password",
			fields: fields{
				config:     testConfig(),
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.LoginRequest{
					Identifier: "testuser",
					Password:   "wrong-password",
				},
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{Username: "testuser"}).
					Return(&model.UserEntity{
						ID:           1,
						Username:     "testuser",
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrAuthentication,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(tt.fields.config, tt.fields.userRepo, tt.fields.healthRepo, tt.fields.txRepo, tt.fields.redisRepo, nil)

			got, err := app.Login(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			// Token is random per call, compare the rest
			if got.Token == "" {
				t.Fatal("Login() returned empty token")
			}
			if got.UserID != tt.want.UserID {
				t.Fatalf("Login() user_id = %d, want %d", got.UserID, tt.want.UserID)
			}
			if got.ProfileCompleted != tt.want.ProfileCompleted {
				t.Fatalf("Login() profile_completed = %v, want %v", got.ProfileCompleted, tt.want.ProfileCompleted)
			}
		})
	}
}

func signTestToken(t *testing.T, secret string, subject string, jti string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        jti,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestUserApp_ValidateToken(t *testing.T) {
	cfg := testConfig()
	jti := uuid.NewString()

	type fields struct {
		userRepo   *usermocks.UserRepository
		healthRepo *healthmocks.HealthRepository
		txRepo     *txmocks.TxRepository
		redisRepo  *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		token    string
		mockCall func(f fields)
		want     uint64
		wantErr  bool
	}{
		{
			name: "success: valid token with live session",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			token: signTestToken(t, cfg.Auth.JWTSecret, "42", jti, time.Hour),
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, jti).
					Return(uint64(42), nil).
					Once()
			},
			want:    42,
			wantErr: false,
		},
		{
			name: "error: malformed token",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			token:   "not-a-jwt",
			wantErr: true,
		},
		{
			name: "error: wrong signing key",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			token:   signTestToken(t, "another-secret", "42", jti, time.Hour),
			wantErr: true,
		},
		{
			name: "error: expired token",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			token:   signTestToken(t, cfg.Auth.JWTSecret, "42", jti, -time.Hour),
			wantErr: true,
		},
		{
			name: "error: session revoked",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			token: signTestToken(t, cfg.Auth.JWTSecret, "42", jti, time.Hour),
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, jti).
					Return(uint64(0), errors.New("redis: nil")).
					Once()
			},
			wantErr: true,
		},
		{
			name: "error: session belongs to another user",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			token: signTestToken(t, cfg.Auth.JWTSecret, "42", jti, time.Hour),
			mockCall: func(f fields) {
				f.redisRepo.
					On("GetSession", mock.Anything, jti).
					Return(uint64(7), nil).
					Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(cfg, tt.fields.userRepo, tt.fields.healthRepo, tt.fields.txRepo, tt.fields.redisRepo, nil)

			got, err := app.ValidateToken(context.Background(), tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateToken() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Fatalf("ValidateToken() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUserApp_GetProfile(t *testing.T) {
	birthDate := time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
	height := 175.0
	weight := 70.5
	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	type fields struct {
		userRepo   *usermocks.UserRepository
		healthRepo *healthmocks.HealthRepository
		txRepo     *txmocks.TxRepository
		redisRepo  *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		userID   uint64
		mockCall func(f fields)
		want     *model.ProfileResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: completed profile",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 1,
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{
						ID:               1,
						Email:            "test@example.com",
						Username:         "testuser",
						ProfileCompleted: true,
						BirthDate:        &birthDate,
						InitialHeight:    &height,
						InitialWeight:    &weight,
						CreatedAt:        createdAt,
					}, nil).
					Once()
			},
			want: &model.ProfileResponse{
				ID:               1,
				Email:            "test@example.com",
				Username:         "testuser",
				ProfileCompleted: true,
				BirthDate:        "1990-05-20",
				InitialHeight:    &height,
				InitialWeight:    &weight,
				CreatedAt:        "2024-01-02T03:04:05Z",
			},
			wantErr: false,
		},
		{
			name: "success: profile not yet completed",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 2,
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 2}).
					Return(&model.UserEntity{
						ID:        2,
						Email:     "new@example.com",
						Username:  "newuser",
						CreatedAt: createdAt,
					}, nil).
					Once()
			},
			want: &model.ProfileResponse{
				ID:        2,
				Email:     "new@example.com",
				Username:  "newuser",
				CreatedAt: "2024-01-02T03:04:05Z",
			},
			wantErr: false,
		},
		{
			name: "error: user not found",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 99,
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 99}).
					Return(nil, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: database failure",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 1,
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(nil, errors.New("connection refused")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrDatabase,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.healthRepo, tt.fields.txRepo, tt.fields.redisRepo, nil)

			got, err := app.GetProfile(context.Background(), tt.userID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetProfile() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetProfile() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUserApp_UpdateProfile(t *testing.T) {
	type fields struct {
		userRepo   *usermocks.UserRepository
		healthRepo *healthmocks.HealthRepository
		txRepo     *txmocks.TxRepository
		redisRepo  *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		userID   uint64
		req      *model.UpdateProfileRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: complete profile",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 1,
			req: &model.UpdateProfileRequest{
				BirthDate:     "1990-05-20",
				InitialHeight: 175.0,
				InitialWeight: 70.5,
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{ID: 1, CreatedAt: time.Now()}, nil).
					Once()

				f.userRepo.
					On("UpdateProfile", mock.Anything, uint64(1), mock.MatchedBy(func(u *model.ProfileUpdate) bool {
						return u.BirthDate.Format("2006-01-02") == "1990-05-20" &&
							u.InitialHeight == 175.0 &&
							u.InitialWeight == 70.5
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: numeric strings are coerced",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 1,
			req: &model.UpdateProfileRequest{
				BirthDate:     "1990-05-20",
				InitialHeight: "175",
				InitialWeight: "70.5",
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{ID: 1, CreatedAt: time.Now()}, nil).
					Once()

				f.userRepo.
					On("UpdateProfile", mock.Anything, uint64(1), mock.MatchedBy(func(u *model.ProfileUpdate) bool {
						return u.InitialHeight == 175.0 && u.InitialWeight == 70.5
					})).
					Return(nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: invalid birth date format",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 1,
			req: &model.UpdateProfileRequest{
				BirthDate:     "20-05-1990",
				InitialHeight: 175.0,
				InitialWeight: 70.5,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: height out of range",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 1,
			req: &model.UpdateProfileRequest{
				BirthDate:     "1990-05-20",
				InitialHeight: 400.0,
				InitialWeight: 70.5,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrValidation,
		},
		{
			name: "error: user not found",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 99,
			req: &model.UpdateProfileRequest{
				BirthDate:     "1990-05-20",
				InitialHeight: 175.0,
				InitialWeight: 70.5,
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 99}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: update fails",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID: 1,
			req: &model.UpdateProfileRequest{
				BirthDate:     "1990-05-20",
				InitialHeight: 175.0,
				InitialWeight: 70.5,
			},
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{ID: 1, CreatedAt: time.Now()}, nil).
					Once()

				f.userRepo.
					On("UpdateProfile", mock.Anything, uint64(1), mock.AnythingOfType("*model.ProfileUpdate")).
					Return(errors.New("update failed")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrDatabase,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.healthRepo, tt.fields.txRepo, tt.fields.redisRepo, nil)

			err := app.UpdateProfile(context.Background(), tt.userID, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateProfile() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestUserApp_DeleteAccount(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	type fields struct {
		userRepo   *usermocks.UserRepository
		healthRepo *healthmocks.HealthRepository
		txRepo     *txmocks.TxRepository
		redisRepo  *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		userID   uint64
		password string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: account and all data deleted",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID:   1,
			password: "password123",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{
						ID:           1,
						Username:     "testuser",
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.healthRepo.On("DeleteEntriesByUserTx", mock.Anything, tx, uint64(1)).Return(int64(5), nil).Once()
				f.healthRepo.On("DeleteSuggestionsByUserTx", mock.Anything, tx, uint64(1)).Return(int64(2), nil).Once()
				f.userRepo.On("DeleteTx", mock.Anything, tx, uint64(1)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: wrong password",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID:   1,
			password: "wrong-password",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{
						ID:           1,
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAuthentication,
		},
		{
			name: "error: user not found",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID:   99,
			password: "password123",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 99}).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: delete entries fails, tx rolled back",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID:   1,
			password: "password123",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{
						ID:           1,
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.healthRepo.On("DeleteEntriesByUserTx", mock.Anything, tx, uint64(1)).Return(int64(0), errors.New("delete failed")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDatabase,
		},
		{
			name: "error: commit fails, tx rolled back",
			fields: fields{
				userRepo:   usermocks.NewUserRepository(t),
				healthRepo: healthmocks.NewHealthRepository(t),
				txRepo:     txmocks.NewTxRepository(t),
				redisRepo:  redismocks.NewRepository(t),
			},
			userID:   1,
			password: "password123",
			mockCall: func(f fields) {
				f.userRepo.
					On("Get", mock.Anything, &model.UserFilter{ID: 1}).
					Return(&model.UserEntity{
						ID:           1,
						PasswordHash: string(hashedPassword),
						CreatedAt:    time.Now(),
					}, nil).
					Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.healthRepo.On("DeleteEntriesByUserTx", mock.Anything, tx, uint64(1)).Return(int64(5), nil).Once()
				f.healthRepo.On("DeleteSuggestionsByUserTx", mock.Anything, tx, uint64(1)).Return(int64(2), nil).Once()
				f.userRepo.On("DeleteTx", mock.Anything, tx, uint64(1)).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(errors.New("commit failed")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrDatabase,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.healthRepo, tt.fields.txRepo, tt.fields.redisRepo, nil)

			err := app.DeleteAccount(context.Background(), tt.userID, tt.password)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteAccount() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
