package entity

import (
	"fmt"
	"strings"
	"time"

	"pocketratings/internal/errors"
)

// ErrInvalidEntity is matched by every validation error returned from an entity constructor.
var ErrInvalidEntity = errors.New("invalid entity")

// BlankFieldError reports a required string field that is empty or whitespace-only.
type BlankFieldError struct {
	Kind  Kind
	Field string
}

func (e *BlankFieldError) Error() string {
	return fmt.Sprintf("%s %s must not be empty", e.Kind, e.Field)
}

func (e *BlankFieldError) Unwrap() error { return ErrInvalidEntity }

// CreatedAfterUpdatedError reports created_at later than updated_at.
type CreatedAfterUpdatedError struct {
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (e *CreatedAfterUpdatedError) Error() string {
	return fmt.Sprintf("created_at (%d) must not be after updated_at (%d)", e.CreatedAt.Unix(), e.UpdatedAt.Unix())
}

func (e *CreatedAfterUpdatedError) Unwrap() error { return ErrInvalidEntity }

// CreatedAfterDeletedError reports deleted_at earlier than created_at.
type CreatedAfterDeletedError struct {
	CreatedAt time.Time
	DeletedAt time.Time
}

func (e *CreatedAfterDeletedError) Error() string {
	return fmt.Sprintf("created_at (%d) must not be after deleted_at (%d)", e.CreatedAt.Unix(), e.DeletedAt.Unix())
}

func (e *CreatedAfterDeletedError) Unwrap() error { return ErrInvalidEntity }

// RatingOutOfRangeError reports a review rating outside [1, 5].
type RatingOutOfRangeError struct {
	Rating Decimal
}

func (e *RatingOutOfRangeError) Error() string {
	return fmt.Sprintf("rating %s must be between %s and %s", e.Rating, MinRating, MaxRating)
}

func (e *RatingOutOfRangeError) Unwrap() error { return ErrInvalidEntity }

// QuantityOutOfRangeError reports a purchase quantity below one.
type QuantityOutOfRangeError struct {
	Quantity int
}

func (e *QuantityOutOfRangeError) Error() string {
	return fmt.Sprintf("quantity %d must be at least 1", e.Quantity)
}

func (e *QuantityOutOfRangeError) Unwrap() error { return ErrInvalidEntity }

// NegativePriceError reports a purchase price below zero.
type NegativePriceError struct {
	Price Decimal
}

func (e *NegativePriceError) Error() string {
	return fmt.Sprintf("price %s must not be negative", e.Price)
}

func (e *NegativePriceError) Unwrap() error { return ErrInvalidEntity }

// InvalidEmailError reports a structurally invalid email address.
type InvalidEmailError struct {
	Email string
}

func (e *InvalidEmailError) Error() string {
	return fmt.Sprintf("invalid email %q", e.Email)
}

func (e *InvalidEmailError) Unwrap() error { return ErrInvalidEntity }

// EmptyPasswordHashError reports a user constructed without a password hash.
type EmptyPasswordHashError struct{}

func (e *EmptyPasswordHashError) Error() string {
	return "password hash must not be empty"
}

func (e *EmptyPasswordHashError) Unwrap() error { return ErrInvalidEntity }

// InvalidDecimalError reports decimal text that could not be parsed.
type InvalidDecimalError struct {
	Field string
	Value string
}

func (e *InvalidDecimalError) Error() string {
	return fmt.Sprintf("%s %q is not a decimal number", e.Field, e.Value)
}

func (e *InvalidDecimalError) Unwrap() error { return ErrInvalidEntity }

func requireText(kind Kind, field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &BlankFieldError{Kind: kind, Field: field}
	}

	return trimmed, nil
}

// checkTimestamps enforces created_at <= updated_at and created_at <= deleted_at.
func checkTimestamps(createdAt, updatedAt time.Time, deletedAt *time.Time) error {
	if createdAt.After(updatedAt) {
		return &CreatedAfterUpdatedError{CreatedAt: createdAt, UpdatedAt: updatedAt}
	}
	if deletedAt != nil && createdAt.After(*deletedAt) {
		return &CreatedAfterDeletedError{CreatedAt: createdAt, DeletedAt: *deletedAt}
	}

	return nil
}
