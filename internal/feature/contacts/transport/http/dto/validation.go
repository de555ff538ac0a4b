package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts an international number like +380 93 123 4567, with
// the spaces optional.
var phonePattern = regexp.MustCompile(`^\+[0-9]{3}\s?[0-9]{2}\s?[0-9]{3}\s?[0-9]{4}$`)

// RegisterPhoneRule adds the "phone" rule used by the binding tags above.
// Call once at startup on gin's validator engine.
func RegisterPhoneRule(v *validator.Validate) error {
	return v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
}
