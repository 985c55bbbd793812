package validator

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// +<10 to 15 digits>, e.g. +15551234567
	phoneRegex = regexp.MustCompile(`^\+\d{10,15}$`)
	// zero-padded 24-hour clock; padding matters because appointment
	// ordering relies on lexicographic comparison
	clockRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("phone_intl", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("iso_date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("clock_24h", func(fl validator.FieldLevel) bool {
		return clockRegex.MatchString(fl.Field().String())
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors turns validator errors into a map of field name to
// human-readable reason, one entry per violated field.
func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "email":
				errors[field] = field + " must be a valid email address"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "oneof":
				errors[field] = field + " must be one of: " + e.Param()
			case "phone_intl":
				errors[field] = field + " must be in format +1234567890 (10-15 digits)"
			case "iso_date":
				errors[field] = field + " must be a date in format YYYY-MM-DD"
			case "clock_24h":
				errors[field] = field + " must be a 24-hour time in format HH:MM"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}
