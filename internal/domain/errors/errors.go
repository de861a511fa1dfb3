package errors

import (
	"net/http"

	"pocketratings/internal/domain/entity"
	"pocketratings/internal/domain/integrity"
	"pocketratings/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches copies made by WithDetails against the predefined error they came from.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode && e.httpCode == t.httpCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Invalid input", "")

	ErrCategoryNotFound       = NewBaseError(http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found", "")
	ErrParentCategoryNotFound = NewBaseError(http.StatusNotFound, "PARENT_CATEGORY_NOT_FOUND", "Parent category not found", "")
	ErrCategoryCycle          = NewBaseError(http.StatusBadRequest, "CATEGORY_CYCLE", "A category cannot be moved below itself", "")
	ErrProductNotFound        = NewBaseError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found", "")
	ErrLocationNotFound       = NewBaseError(http.StatusNotFound, "LOCATION_NOT_FOUND", "Location not found", "")
	ErrPurchaseNotFound       = NewBaseError(http.StatusNotFound, "PURCHASE_NOT_FOUND", "Purchase not found", "")
	ErrReviewNotFound         = NewBaseError(http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found", "")
	ErrUserNotFound           = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found", "")

	// ErrAlreadyDeleted is returned by a soft delete that found no active row.
	ErrAlreadyDeleted = NewBaseError(http.StatusNotFound, "NOT_FOUND_OR_ALREADY_DELETED", "Not found or already deleted", "")

	ErrUserAlreadyExists   = NewBaseError(http.StatusConflict, "USER_ALREADY_EXISTS", "Email is already registered", "")
	ErrConstraintViolation = NewBaseError(http.StatusConflict, "CONSTRAINT_VIOLATION", "The change conflicts with rows that still reference it", "")

	ErrInvalidCredentials = NewBaseError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password", "")
	ErrUnauthorized       = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", "")
	ErrForbidden          = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Not allowed to modify this resource", "")
	ErrPasswordHashFailed = NewBaseError(http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "Password processing failed", "")
	ErrTokenIssueFailed   = NewBaseError(http.StatusInternalServerError, "TOKEN_ISSUE_FAILED", "Token generation failed", "")
)

// NotFoundFor returns the not-found error of kind.
func NotFoundFor(kind entity.Kind) *BaseError {
	switch kind {
	case entity.KindCategory:
		return ErrCategoryNotFound
	case entity.KindProduct:
		return ErrProductNotFound
	case entity.KindLocation:
		return ErrLocationNotFound
	case entity.KindPurchase:
		return ErrPurchaseNotFound
	case entity.KindReview:
		return ErrReviewNotFound
	case entity.KindUser:
		return ErrUserNotFound
	default:
		return NewBaseError(http.StatusNotFound, "NOT_FOUND", "Not found", string(kind))
	}
}

// ValidationError carries an entity validation failure as an AppError.
type ValidationError struct {
	cause error
}

// NewValidationError wraps a constructor or request validation failure.
func NewValidationError(cause error) AppError {
	return &ValidationError{cause: cause}
}

func (e *ValidationError) Error() string     { return e.cause.Error() }
func (e *ValidationError) Unwrap() error     { return e.cause }
func (e *ValidationError) HTTPCode() int     { return ErrValidationFailed.HTTPCode() }
func (e *ValidationError) ErrorCode() string { return ErrValidationFailed.ErrorCode() }
func (e *ValidationError) Message() string   { return ErrValidationFailed.Message() }
func (e *ValidationError) Details() string   { return e.cause.Error() }

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }

// Class is the coarse failure category callers branch on.
type Class int

const (
	ClassNone Class = iota
	ClassValidation
	ClassIntegrity
	ClassNotFound
	ClassConflict
	ClassAuth
	ClassStorage
)

func (c Class) String() string {
	switch c {
	case ClassNone:
		return "none"
	case ClassValidation:
		return "validation"
	case ClassIntegrity:
		return "integrity"
	case ClassNotFound:
		return "not_found"
	case ClassConflict:
		return "conflict"
	case ClassAuth:
		return "auth"
	default:
		return "storage"
	}
}

// Classify maps any error returned by the use cases onto a Class.
// Errors that are not recognized are treated as storage failures.
func Classify(err error) Class {
	if err == nil {
		return ClassNone
	}
	if errors.Is(err, entity.ErrInvalidEntity) {
		return ClassValidation
	}
	if errors.Is(err, integrity.ErrViolation) {
		return ClassIntegrity
	}

	var appErr AppError
	if !errors.As(err, &appErr) {
		return ClassStorage
	}

	switch appErr.HTTPCode() {
	case http.StatusBadRequest:
		return ClassValidation
	case http.StatusNotFound:
		return ClassNotFound
	case http.StatusConflict:
		return ClassConflict
	case http.StatusUnauthorized, http.StatusForbidden:
		return ClassAuth
	default:
		return ClassStorage
	}
}
