package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"doctors/internal/domain"
)

const (
	messageRequired = "This field is required."
	messageInvalid  = "Invalid value."
)

// Validator runs struct-tag validation and renders failures as client-facing
// field messages keyed by the JSON field name.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseFee(fl.Field().String())
		return err == nil
	})

	return &Validator{validate: v}
}

// Struct validates s and returns the collected field errors, or nil.
func (v *Validator) Struct(s any) domain.FieldErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors := domain.FieldErrors{}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fieldErrors.Add("non_field_errors", err.Error())
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors.Add(fe.Field(), message(fe))
	}

	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return messageRequired
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "decimal":
		_, err := domain.ParseFee(fmt.Sprint(fe.Value()))
		var feeErr *domain.FeeError
		if errors.As(err, &feeErr) {
			return feeErr.Message
		}
		return domain.ErrFeeInvalid.Message
	default:
		return messageInvalid
	}
}
