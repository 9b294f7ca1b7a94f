// Package validator wraps the go-playground/validator library for
// declarative struct validation with standardized error formatting. Fields
// are validated through `validate:"..."` tags and violations are reported as
// a joined error chain rooted at ErrValidationFailed.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in the chain returned when one or
// more validation rules are violated, allowing callers to detect validation
// failures with errors.Is regardless of which fields failed.
var ErrValidationFailed = errors.New("struct validation failed")

// validate is a singleton go-playground validator instance, created on
// package load.
var validate *gvalidator.Validate

// fieldErrFormat renders one field violation, e.g.
// "field 'Policy': value 'fast' failed the 'oneof' rule".
const fieldErrFormat = "field '%s': value '%v' failed the '%s' rule"

func init() {
	validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())
}

// Validate checks whether v satisfies its validation tags. It returns nil on
// success, or a joined error starting with ErrValidationFailed followed by
// one formatted entry per violated field.
//
// Example:
//
//	type options struct {
//	    Input string `validate:"required"`
//	}
//
//	if err := validator.Validate(opts); errors.Is(err, validator.ErrValidationFailed) {
//	    // reject the input
//	}
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrors gvalidator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	errs := make([]error, 0, len(fieldErrors)+1)
	errs = append(errs, ErrValidationFailed)
	for _, fieldErr := range fieldErrors {
		errs = append(errs, fmt.Errorf(fieldErrFormat, fieldErr.Field(), fieldErr.Value(), fieldErr.Tag()))
	}

	return errors.Join(errs...)
}
