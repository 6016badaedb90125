package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern is the accepted international phone format.
var phonePattern = regexp.MustCompile(`^\+?1?\d{9,15}$`)

// RegisterValidations registers the custom binding rules used by this
// package on the given validator engine. Called once at router setup.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}
