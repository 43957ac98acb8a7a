package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Field bounds from the record rules: band names up to 50 characters, genres
// up to 30, locations and venues merely non-empty. Values are trimmed before
// validation, so "required" also rejects whitespace-only input.
type bandFields struct {
	Name  string `validate:"required,max=50"`
	Genre string `validate:"required,max=30"`
}

type tourFields struct {
	Location string `validate:"required"`
	Venue    string `validate:"required"`
}

// checkFields runs struct validation and converts the first failure into a
// field-level ValidationError.
func checkFields(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Reason: "cannot be empty"}
	case "max":
		return &ValidationError{Field: field, Reason: fmt.Sprintf("must be at most %s characters", fe.Param())}
	default:
		return &ValidationError{Field: field, Reason: fmt.Sprintf("is invalid (%s)", fe.Tag())}
	}
}

// fold normalizes user text the way every stored name/genre/location/venue is
// normalized: trimmed, then lowercased.
func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
