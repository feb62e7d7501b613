package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/stockcart/storefront/internal/core/domain"
)

// FieldViolation describes one failed validation rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned by Validate when a request body breaks its schema.
type ValidationError struct {
	Details []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		msgs = append(msgs, d.Message)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Field names in violations follow the json tags.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePrice(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("imagetype", func(fl validator.FieldLevel) bool {
		return domain.ImageType(fl.Field().String()).Valid()
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			details := make([]FieldViolation, 0, len(ve))
			for _, fe := range ve {
				details = append(details, FieldViolation{
					Field:   fe.Field(),
					Rule:    fe.Tag(),
					Message: fieldError(fe),
				})
			}
			return &ValidationError{Details: details}
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	case "price":
		return field + " must be a decimal amount with at most two fractional digits"
	case "imagetype":
		return field + " must be one of: photo vector illustration"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
