package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// допустимые символы номера телефона: цифры, пробелы, +, -, скобки
var phonePattern = regexp.MustCompile(`^[0-9+()\- ]+$`)

type Validator struct {
	validate *validator.Validate
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (ve ValidationErrors) Error() string {
	messages := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

func New() *Validator {
	validate := validator.New()
	// в ошибках поле называется так же, как в JSON запроса
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: validate}
}

func (v *Validator) Validate(request any) error {
	err := v.validate.Struct(request)
	if err == nil {
		return nil
	}
	var validateErrs validator.ValidationErrors
	if errors.As(err, &validateErrs) {
		return formatValidationErrors(validateErrs)
	}
	return err
}

func formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	validationErrors := make([]ValidationError, 0, len(errs))
	for _, err := range errs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: errorMessage(err),
		})
	}
	return ValidationErrors{Errors: validationErrors}
}

func errorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' required", err.Field())
	case "email":
		return fmt.Sprintf("Field '%s' must contain a valid email address", err.Field())
	case "max":
		return fmt.Sprintf("Field '%s' must contain a maximum of %s characters", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("Field '%s' must be greater than or equal to %s", err.Field(), err.Param())
	case "datetime":
		return fmt.Sprintf("Field '%s' must be a date in format %s", err.Field(), err.Param())
	case "phone":
		return fmt.Sprintf("Field '%s' must contain only digits, spaces, '+', '-' and parentheses", err.Field())
	default:
		return fmt.Sprintf("Field '%s' contains an incorrect value", err.Field())
	}
}
