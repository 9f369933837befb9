package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
)

// ValidationError describes one invalid config field
type ValidationError struct {
	Field   string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors collects every invalid field of a config
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validator checks a Config against its struct tags
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the glob rule registered
func NewValidator() *Validator {
	v := validator.New()
	err := v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
		return doublestar.ValidatePattern(fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("failed to register glob validation: %v", err))
	}
	return &Validator{validate: v}
}

// Validate returns ValidationErrors when cfg has invalid fields
func (v *Validator) Validate(cfg *Config) error {
	if err := v.validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return translate(validationErrs)
		}
		return err
	}
	return nil
}

func translate(errs validator.ValidationErrors) ValidationErrors {
	var out ValidationErrors
	for _, err := range errs {
		out = append(out, ValidationError{
			Field:   err.Namespace(),
			Message: message(err),
		})
	}
	return out
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "oneof":
		return fmt.Sprintf("%q must be one of: %s", err.Value(), err.Param())
	case "glob":
		return fmt.Sprintf("%q is not a valid glob pattern", err.Value())
	case "required":
		return "must not be empty"
	}
	return fmt.Sprintf("failed %q validation", err.Tag())
}
