package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/adityarizkyr/health-tracker/constant"
	"github.com/adityarizkyr/health-tracker/utils/errors"
	"github.com/adityarizkyr/health-tracker/utils/logger"
	gpvalidator "github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse is the error body shape for all failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Code  string `json:"code,omitempty"`
}

func writeSuccess(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps a taxonomy error to its status code and body. Any
// other error is logged server-side and reported as an opaque 500 so
// internal detail never reaches the client.
func writeError(w http.ResponseWriter, err error) {
	var customErr errors.CustomError
	if !stderrors.As(err, &customErr) {
		logger.Error("unclassified error reached the boundary", zap.Error(err))
		customErr = errors.SetCustomError(constant.ErrInternal)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(customErr.ErrorHTTPCode())
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error: customErr.Error(),
		Field: customErr.Field(),
		Code:  customErr.ErrorCode(),
	})
}

// requestShapeError converts a go-playground validation failure on a
// request struct into a field-named taxonomy error.
func requestShapeError(err error) error {
	var verrs gpvalidator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		return errors.SetValidationError(fmt.Sprintf("Field '%s' is required", field), field)
	}
	return errors.SetCustomError(constant.ErrValidation)
}
