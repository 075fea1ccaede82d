package apperrors

import "errors"

// Common errors
var (
	// Catalogue errors
	ErrMalformedCatalogue   = errors.New("malformed catalogue")
	ErrUnknownCourse        = errors.New("unknown course")
	ErrCatalogueUnavailable = errors.New("catalogue unavailable")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// NewMalformedCatalogueError wraps ErrMalformedCatalogue with a message
// identifying the offending course/section.
func NewMalformedCatalogueError(message string) error {
	return &CustomError{
		Err:     ErrMalformedCatalogue,
		Message: message,
	}
}

// NewUnknownCourseError wraps ErrUnknownCourse with the missing course code
// so callers can report it back to the user.
func NewUnknownCourseError(code string) error {
	return &CustomError{
		Err:     ErrUnknownCourse,
		Message: "unknown course: " + code,
		Details: map[string]interface{}{"course": code},
	}
}

// NewValidationError wraps ErrValidationFailed with a message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
