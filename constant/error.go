package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrValidation
	ErrAuthentication
	ErrAuthorization
	ErrConflict
	ErrServiceUnavailable
	ErrDatabase
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:            "success",
	ErrInternal:           "Internal server error",
	ErrNotFound:           "Resource not found",
	ErrValidation:         "Invalid request",
	ErrAuthentication:     "Invalid credentials",
	ErrAuthorization:      "Access denied",
	ErrConflict:           "Resource conflict",
	ErrServiceUnavailable: "Service temporarily unavailable",
	ErrDatabase:           "Database operation failed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:            http.StatusOK,
	ErrInternal:           http.StatusInternalServerError,
	ErrNotFound:           http.StatusNotFound,
	ErrValidation:         http.StatusBadRequest,
	ErrAuthentication:     http.StatusUnauthorized,
	ErrAuthorization:      http.StatusForbidden,
	ErrConflict:           http.StatusConflict,
	ErrServiceUnavailable: http.StatusServiceUnavailable,
	ErrDatabase:           http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:            "0000",
	ErrInternal:           "0001",
	ErrNotFound:           "0002",
	ErrValidation:         "0003",
	ErrAuthentication:     "0004",
	ErrAuthorization:      "0005",
	ErrConflict:           "0006",
	ErrServiceUnavailable: "0007",
	ErrDatabase:           "0008",
}
