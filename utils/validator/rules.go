package validatorx

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/adityarizkyr/health-tracker/constant"
	"github.com/adityarizkyr/health-tracker/model"
	"github.com/adityarizkyr/health-tracker/utils/errors"
)

// Normalization rules for untrusted input. Everything past these
// functions is fully typed; they perform no I/O. Checks run in a fixed
// precedence per field: presence, then type/parse, then range.

const (
	PasswordMinLen = 6
	PasswordMaxLen = 128
	UsernameMinLen = 3
	UsernameMaxLen = 50
	HeightMinCm    = 50
	HeightMaxCm    = 300
	WeightMinKg    = 20
	WeightMaxKg    = 500
	MealMaxLen     = 500
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// ValidateRegistration trims and lowercases the identity fields and
// enforces the registration rules. The returned request is safe to hash
// and persist.
func ValidateRegistration(req *model.RegisterRequest) (*model.RegisterRequest, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, errors.SetValidationError("Field 'email' is required", "email")
	}
	email = strings.ToLower(email)
	if !emailPattern.MatchString(email) {
		return nil, errors.SetValidationError("Invalid email format", "email")
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, errors.SetValidationError("Field 'username' is required", "username")
	}
	if strings.Contains(username, "@") {
		return nil, errors.SetValidationError("Username cannot contain @ symbol", "username")
	}
	if len(username) < UsernameMinLen || len(username) > UsernameMaxLen {
		return nil, errors.SetValidationError(
			fmt.Sprintf("Username must be between %d and %d characters", UsernameMinLen, UsernameMaxLen), "username")
	}
	if !usernamePattern.MatchString(username) {
		return nil, errors.SetValidationError("Username may only contain letters, digits, hyphen and underscore", "username")
	}

	if req.Password == "" {
		return nil, errors.SetValidationError("Field 'password' is required", "password")
	}
	if len(req.Password) < PasswordMinLen || len(req.Password) > PasswordMaxLen {
		return nil, errors.SetValidationError(
			fmt.Sprintf("Password must be between %d and %d characters", PasswordMinLen, PasswordMaxLen), "password")
	}

	return &model.RegisterRequest{
		Email:    email,
		Username: username,
		Password: req.Password,
	}, nil
}

// ValidateProfile normalizes the profile submission into typed fields.
func ValidateProfile(req *model.UpdateProfileRequest) (*model.ProfileUpdate, error) {
	birthDate, err := ParseDate(req.BirthDate, "birth_date")
	if err != nil {
		return nil, err
	}

	height, err := parseMeasurement(req.InitialHeight, "initial_height", "height", HeightMinCm, HeightMaxCm, "cm")
	if err != nil {
		return nil, err
	}

	weight, err := parseMeasurement(req.InitialWeight, "initial_weight", "weight", WeightMinKg, WeightMaxKg, "kg")
	if err != nil {
		return nil, err
	}

	return &model.ProfileUpdate{
		BirthDate:     birthDate,
		InitialHeight: height,
		InitialWeight: weight,
	}, nil
}

// ValidateDailyEntry normalizes a daily submission into typed fields.
func ValidateDailyEntry(req *model.DailyEntryRequest) (*model.DailyEntryInput, error) {
	entryDate, err := ParseDate(req.Date, "date")
	if err != nil {
		return nil, err
	}

	height, err := parseMeasurement(req.Height, "height", "height", HeightMinCm, HeightMaxCm, "cm")
	if err != nil {
		return nil, err
	}

	weight, err := parseMeasurement(req.Weight, "weight", "weight", WeightMinKg, WeightMaxKg, "kg")
	if err != nil {
		return nil, err
	}

	breakfast, err := validateMeal(req.Breakfast, "breakfast")
	if err != nil {
		return nil, err
	}
	lunch, err := validateMeal(req.Lunch, "lunch")
	if err != nil {
		return nil, err
	}
	dinner, err := validateMeal(req.Dinner, "dinner")
	if err != nil {
		return nil, err
	}

	return &model.DailyEntryInput{
		Date:      entryDate,
		Height:    height,
		Weight:    weight,
		Breakfast: breakfast,
		Lunch:     lunch,
		Dinner:    dinner,
	}, nil
}

// ParseDate accepts calendar dates in strict zero-padded YYYY-MM-DD form
// only. Time components, timezone suffixes and alternate separators are
// rejected. The result is midnight UTC of that date.
func ParseDate(value, field string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, errors.SetValidationError(fmt.Sprintf("Field '%s' is required", field), field)
	}
	if !datePattern.MatchString(value) {
		return time.Time{}, errors.SetValidationError(fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD", fieldLabel(field)), field)
	}
	parsed, err := time.ParseInLocation(constant.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.SetValidationError(fmt.Sprintf("Invalid %s format. Use YYYY-MM-DD", fieldLabel(field)), field)
	}
	return parsed, nil
}

func fieldLabel(field string) string {
	if field == "birth_date" {
		return "birth date"
	}
	return "date"
}

// parseMeasurement coerces an untyped JSON value (number or numeric
// string) into a float and enforces its range.
func parseMeasurement(raw interface{}, field, label string, min, max float64, unit string) (float64, error) {
	if raw == nil {
		return 0, errors.SetValidationError(fmt.Sprintf("Field '%s' is required", field), field)
	}

	var value float64
	switch v := raw.(type) {
	case float64:
		value = v
	case int:
		value = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.SetValidationError(fmt.Sprintf("Invalid %s value", label), field)
		}
		value = parsed
	default:
		return 0, errors.SetValidationError(fmt.Sprintf("Invalid %s value", label), field)
	}

	if value < min || value > max {
		return 0, errors.SetValidationError(
			fmt.Sprintf("%s must be between %d and %d %s", capitalize(label), int(min), int(max), unit), field)
	}
	return value, nil
}

func validateMeal(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", errors.SetValidationError(fmt.Sprintf("%s description is required", capitalize(field)), field)
	}
	if len(trimmed) > MealMaxLen {
		return "", errors.SetValidationError(
			fmt.Sprintf("%s description must be at most %d characters", capitalize(field), MealMaxLen), field)
	}
	return trimmed, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
