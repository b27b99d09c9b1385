package errors

import "github.com/adityarizkyr/health-tracker/constant"

// CustomError is the only error type allowed to cross the application
// layer. It carries one of the closed taxonomy kinds, an optional
// message override and, for validation errors, the first offending
// field name.
type CustomError struct {
	errType constant.ErrorType
	message string
	field   string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

// Field returns the offending field name, or "" when not applicable.
func (c CustomError) Field() string {
	return c.field
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorWithMessage overrides the default taxonomy message.
func SetCustomErrorWithMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

// SetValidationError builds an ErrValidation naming the offending field.
func SetValidationError(message, field string) CustomError {
	return CustomError{
		errType: constant.ErrValidation,
		message: message,
		field:   field,
	}
}
