package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map so the API can return
// per-field errors to the wizard.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator wraps go-playground/validator with JSON field names and the
// portal's custom rules.
type Validator struct {
	validate *validator.Validate
}

// New creates a configured Validator instance.
func New() *Validator {
	v := validator.New()

	// Report camelCase JSON names, not Go struct field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{
		validate: v,
	}
}

// Validate runs struct validation, returning *ValidationError on rule
// failures.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	for _, fieldErr := range validationErrors {
		customErrors[fieldErr.Field()] = messageForTag(fieldErr)
	}
	return &ValidationError{Errors: customErrors}
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "in-mobile":
		return "Please enter a valid 10-digit mobile number"
	case "in-pincode":
		return "Please enter a valid 6-digit pincode"
	case "is-branch":
		return "Unknown branch"
	case "is-tier":
		return "Unknown tier"
	case "is-job-status":
		return "Unknown job status"
	case "is-application-status":
		return "Unknown application status"
	case "is-kyc-status":
		return "Unknown KYC status"
	case "is-board":
		return "Unknown board"
	case "is-caste-category":
		return "Unknown caste category"
	case "cgpa":
		return "CGPA must be between 0 and 10"
	case "percent":
		return "Percentage must be between 0 and 100"
	default:
		return fmt.Sprintf("Failed validation rule '%s'", fe.Tag())
	}
}
