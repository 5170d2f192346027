package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	validate.RegisterStructValidation(func(sl validator.StructLevel) {
		logo := sl.Current().Interface().(LogoSpec)
		if logo.Mode == LogoExternalUrl && strings.TrimSpace(logo.URL) == "" {
			sl.ReportError(logo.URL, "url", "URL", "required", "")
		}
	}, LogoSpec{})
}

// ValidationError represents a single field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// ValidateStruct validates a struct and reports failures as ValidationErrors
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	result := ValidationErrors{Errors: make([]ValidationError, 0, len(fieldErrs))}
	for _, fieldErr := range fieldErrs {
		result.Errors = append(result.Errors, ValidationError{
			Field:   fieldPath(fieldErr),
			Tag:     fieldErr.Tag(),
			Message: validationMessage(fieldErr),
		})
	}
	return result
}

// fieldPath drops the root struct name, e.g. "QrCodeOptions.logo.url" -> "logo.url"
func fieldPath(fieldErr validator.FieldError) string {
	parts := strings.SplitN(fieldErr.Namespace(), ".", 2)
	if len(parts) < 2 {
		return fieldErr.Field()
	}
	return parts[1]
}

func validationMessage(fieldErr validator.FieldError) string {
	field := fieldPath(fieldErr)
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", field)
	case "hexcolor":
		return fmt.Sprintf("Field '%s' must be a hex color such as #ffffff", field)
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of %s", field, fieldErr.Param())
	case "url":
		return fmt.Sprintf("Field '%s' must be a valid URL", field)
	case "gt", "gte", "lte":
		return fmt.Sprintf("Field '%s' is out of range", field)
	default:
		return fmt.Sprintf("Field '%s' failed validation on '%s' tag", field, fieldErr.Tag())
	}
}
