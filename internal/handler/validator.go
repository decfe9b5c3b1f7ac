package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/SideQuest_Go/internal/calendar"
	"github.com/osse101/SideQuest_Go/internal/domain"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("clock", validateClock)
	_ = v.RegisterValidation("theme", validateTheme)
	_ = v.RegisterValidation("timezone", validateTimezone)
	_ = v.RegisterValidation("defaultquest", validateDefaultQuest)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a user-friendly map
// keyed by JSON field name.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "email":
			errs[field] = "Invalid email format"
		case "clock":
			errs[field] = "Must be a time of day in HH:MM format"
		case "theme":
			errs[field] = "Must be one of light, dark, system"
		case "timezone":
			errs[field] = "Unknown timezone"
		case "defaultquest":
			errs[field] = "Unknown default quest"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// Optional fields pass when empty; "required" enforces presence.

func validateClock(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := calendar.ParseClock(s)
	return err == nil
}

func validateTheme(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", domain.ThemeLight, domain.ThemeDark, domain.ThemeSystem:
		return true
	}
	return false
}

func validateTimezone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := calendar.LoadLocation(s)
	return err == nil
}

func validateDefaultQuest(fl validator.FieldLevel) bool {
	_, ok := domain.LookupDefaultQuest(fl.Field().String())
	return ok
}
