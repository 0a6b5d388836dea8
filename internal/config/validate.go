package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/casealert/casealert/internal/notify"
	"github.com/go-playground/validator/v10"
)

// ValidationError describes one invalid configuration field
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field '%s': %s (got %q)", e.Field, e.Message, e.Value)
}

var validate = newValidator()

// newValidator reports fields by their koanf key instead of the Go name.
// The "backend" tag accepts the names registered in notify.Backends.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("koanf")
	})
	_ = v.RegisterValidation("backend", func(fl validator.FieldLevel) bool {
		return notify.ValidBackend(fl.Field().String())
	})
	return v
}

// Validate checks cfg against its struct tags. The first failing field is
// reported as a *ValidationError keyed by its config name.
func Validate(cfg *Configuration) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("config validation failed: %w", err)
	}

	fe := fieldErrs[0]
	return &ValidationError{
		Field:   fe.Field(),
		Value:   fmt.Sprint(fe.Value()),
		Message: describe(fe),
	}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "backend":
		return "must be one of " + strings.Join(notify.Backends, ", ")
	default:
		return "failed " + fe.Tag() + " check"
	}
}
