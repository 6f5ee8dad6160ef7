package apperrors

import "errors"

// Ingestion errors
var (
	// ErrMissingIdentifier means a record carried no usable email or mobile
	// number after normalization. Such records never reach persistence.
	ErrMissingIdentifier = errors.New("missing email and phone")

	// ErrCoreWriteFailed means the mandatory applicant write failed. The whole
	// record is aborted; no dependent stage runs after it.
	ErrCoreWriteFailed = errors.New("core record write failed")

	// ErrDuplicateKey means the store rejected an insert on the natural key.
	ErrDuplicateKey = errors.New("duplicate natural key")

	ErrValidationFailed = errors.New("validation failed")
)

// Resource errors
var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrBadRequest        = errors.New("bad request")
)

// NewValidationError creates a validation error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
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

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
