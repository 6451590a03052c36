package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every InvalidInputError.
var ErrInvalidInput = errors.New("invalid input")

// Domain errors for Money value object
var (
	// ErrNegativePrice indicates an attempt to use a negative subunit amount.
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Domain errors for Product validation
var (
	// ErrNegativeColorCount indicates a negative number of color variants.
	ErrNegativeColorCount = errors.New("color count cannot be negative")

	// ErrMissingReleaseDate indicates a product without a release date.
	ErrMissingReleaseDate = errors.New("release date is required")

	// ErrMalformedAmount indicates a price that is not an integral subunit value.
	ErrMalformedAmount = errors.New("amount must be an integer number of subunits")

	// ErrMalformedColorCount indicates a color count that is not a whole number.
	ErrMalformedColorCount = errors.New("color count must be a whole number")

	// ErrMalformedText indicates a text field that is not a JSON string.
	ErrMalformedText = errors.New("must be a string")

	// ErrMalformedProduct indicates a product that is not a JSON object.
	ErrMalformedProduct = errors.New("product must be a JSON object")

	// ErrMalformedDate indicates a release date that could not be parsed.
	ErrMalformedDate = errors.New("release date is malformed")

	// ErrMissingSalePrice indicates an on-sale presentation was requested
	// for a product that carries no sale price.
	ErrMissingSalePrice = errors.New("on-sale product has no sale price")
)

// Domain errors for Variant
var (
	// ErrUnknownVariant indicates a variant name outside the closed set.
	ErrUnknownVariant = errors.New("unknown variant")
)

// InvalidInputError reports a caller-supplied field that failed validation.
// It matches both ErrInvalidInput and its underlying reason via errors.Is.
type InvalidInputError struct {
	Field string
	Err   error
}

// NewInvalidInput wraps reason for field.
func NewInvalidInput(field string, reason error) *InvalidInputError {
	return &InvalidInputError{Field: field, Err: reason}
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
