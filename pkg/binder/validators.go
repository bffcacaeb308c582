package binder

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var notificationTimeRE = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// notificationTimeValidator ensures the value matches the 24-hour HH:MM
// format or the empty string. The empty string is allowed so the validator
// can be used to clear a previously set time; combine with `required` when
// the value must be present.
func notificationTimeValidator(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return notificationTimeRE.MatchString(value)
}
