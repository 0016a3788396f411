// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	phoneRegex        = regexp.MustCompile(`^\+?\d{9,15}$`)
	businessCodeRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)
	hhmmRegex         = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// RegisterCustomValidations регистрирует наши правила в переданном валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("phone_number", isPhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("business_code", isBusinessCode); err != nil {
		return err
	}
	if err := v.RegisterValidation("hhmm", isHourMinute); err != nil {
		return err
	}
	return nil
}

func isPhoneNumber(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

func isBusinessCode(fl validator.FieldLevel) bool {
	return businessCodeRegex.MatchString(fl.Field().String())
}

func isHourMinute(fl validator.FieldLevel) bool {
	return hhmmRegex.MatchString(fl.Field().String())
}
