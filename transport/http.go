package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	healthapp "github.com/adityarizkyr/health-tracker/application/health"
	userapp "github.com/adityarizkyr/health-tracker/application/user"
	"github.com/adityarizkyr/health-tracker/constant"
	"github.com/adityarizkyr/health-tracker/model"
	utilsContext "github.com/adityarizkyr/health-tracker/utils/context"
	"github.com/adityarizkyr/health-tracker/utils/errors"
	validatorx "github.com/adityarizkyr/health-tracker/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp   userapp.UserApp
	HealthApp healthapp.HealthApp
}

func NewTransport(UserApp userapp.UserApp, HealthApp healthapp.HealthApp) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		UserApp:   UserApp,
		HealthApp: HealthApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Protected routes
	mux.HandleFunc("/profile", rh.GetProfile).Methods(http.MethodGet)
	mux.HandleFunc("/profile", rh.UpdateProfile).Methods(http.MethodPost)
	mux.HandleFunc("/profile/delete", rh.DeleteAccount).Methods(http.MethodDelete)
	mux.HandleFunc("/daily-entry", rh.SubmitDailyEntry).Methods(http.MethodPost)
	mux.HandleFunc("/daily-entries", rh.GetDailyEntries).Methods(http.MethodGet)
	mux.HandleFunc("/suggestion", rh.GetDailySuggestion).Methods(http.MethodPost)

	// Legacy route aliases kept for older clients; same handlers, no
	// separate logic.
	mux.HandleFunc("/submit_daily_data", rh.SubmitDailyEntry).Methods(http.MethodPost)
	mux.HandleFunc("/get_daily_data", rh.GetDailyEntries).Methods(http.MethodGet)
	mux.HandleFunc("/health-suggestion", rh.GetDailySuggestion).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} model.RegisterResponse
// @Failure 400 {object} transport.ErrorResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, requestShapeError(err))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, struct {
		Message string `json:"message"`
		model.RegisterResponse
	}{"User registered successfully", *res})
}

// Login handler
// @Summary Login user
// @Description Login with email or username and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 401 {object} transport.ErrorResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, requestShapeError(err))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, struct {
		Message string `json:"message"`
		model.LoginResponse
	}{"Login successful", *res})
}

// GetProfile handler
// @Summary Get profile
// @Description Get the authenticated user's profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProfileResponse
// @Failure 404 {object} transport.ErrorResponse
// @Router /profile [get]
func (s *RestHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrAuthentication))
		return
	}

	res, err := s.UserApp.GetProfile(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, struct {
		Message string                 `json:"message"`
		Data    *model.ProfileResponse `json:"data"`
	}{"Profile retrieved successfully", res})
}

// UpdateProfile handler
// @Summary Update profile
// @Description Submit birth date, initial height and initial weight
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateProfileRequest true "Profile Request"
// @Success 200 {object} transport.ErrorResponse
// @Failure 400 {object} transport.ErrorResponse
// @Router /profile [post]
func (s *RestHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrAuthentication))
		return
	}

	var req model.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, requestShapeError(err))
		return
	}

	if err := s.UserApp.UpdateProfile(ctx, userID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{"Profile updated successfully"})
}

// DeleteAccount handler
// @Summary Delete account
// @Description Delete the account and all owned data; requires password confirmation
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DeleteAccountRequest true "Delete Request"
// @Success 200 {object} transport.ErrorResponse
// @Failure 401 {object} transport.ErrorResponse
// @Router /profile/delete [delete]
func (s *RestHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrAuthentication))
		return
	}

	var req model.DeleteAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetValidationError("Password confirmation required", "password"))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetValidationError("Password confirmation required", "password"))
		return
	}

	if err := s.UserApp.DeleteAccount(ctx, userID, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{"Account and all associated data deleted successfully"})
}

// SubmitDailyEntry handler
// @Summary Submit daily entry
// @Description Submit one health record for a calendar date
// @Tags Health
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.DailyEntryRequest true "Daily Entry Request"
// @Success 201 {object} model.SubmitDailyEntryResponse
// @Failure 409 {object} transport.ErrorResponse
// @Router /daily-entry [post]
func (s *RestHandler) SubmitDailyEntry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrAuthentication))
		return
	}

	var req model.DailyEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrValidation))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, requestShapeError(err))
		return
	}

	res, err := s.HealthApp.SubmitDailyEntry(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, struct {
		Message string `json:"message"`
		model.SubmitDailyEntryResponse
	}{"Daily data submitted successfully", *res})
}

// GetDailyEntries handler
// @Summary List daily entries
// @Description List the user's entries, most recent date first
// @Tags Health
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of entries (1-100, default 30)"
// @Success 200 {object} model.DailyEntriesResponse
// @Router /daily-entries [get]
func (s *RestHandler) GetDailyEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrAuthentication))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, errors.SetValidationError("Invalid limit value", "limit"))
			return
		}
		limit = parsed
	}

	res, err := s.HealthApp.GetDailyEntries(ctx, userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, struct {
		Message string `json:"message"`
		model.DailyEntriesResponse
	}{"Daily data retrieved successfully", *res})
}

// GetDailySuggestion handler
// @Summary Daily suggestion
// @Description Generate or fetch today's AI health suggestion
// @Tags Health
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.SuggestionResponse
// @Failure 503 {object} transport.ErrorResponse
// @Router /suggestion [post]
func (s *RestHandler) GetDailySuggestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrAuthentication))
		return
	}

	res, err := s.HealthApp.GetDailySuggestion(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	message := "Daily suggestion generated successfully"
	if res.AlreadyReceived {
		message = "Daily suggestion already received"
	}

	writeSuccess(w, http.StatusOK, struct {
		Message string `json:"message"`
		model.SuggestionResponse
	}{message, *res})
}
