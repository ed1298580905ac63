// Package validator adapts go-playground/validator to echo's Validator
// interface and registers the service's custom rules.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// companyIDsPattern accepts one or more alphanumeric tokens joined by commas.
var companyIDsPattern = regexp.MustCompile(`^([a-zA-Z0-9]+,)*[a-zA-Z0-9]+$`)

// Validator wraps the go-playground validator for structured validation.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator with the "company_ids" rule registered.
func New() *Validator {
	v := validator.New()
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("company_ids", func(fl validator.FieldLevel) bool {
		return companyIDsPattern.MatchString(fl.Field().String())
	})
	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (val *Validator) Validate(i any) error {
	return val.v.Struct(i)
}
