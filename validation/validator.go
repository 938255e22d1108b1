package validation

import (
	"regexp"

	validatorv10 "github.com/go-playground/validator/v10"
)

// loose international phone shape: optional +, then digits with separators
var phoneRE = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{6,19}$`)

// New returns a configured validator with the custom validations registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// "phone" validates the checkout form's phone field.
	_ = v.RegisterValidation("phone", func(fl validatorv10.FieldLevel) bool {
		return phoneRE.MatchString(fl.Field().String())
	})

	return v
}
