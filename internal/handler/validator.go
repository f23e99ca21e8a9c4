package handler

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// packageNamePattern accepts dotted identifiers such as com.bank.app.
var packageNamePattern = regexp.MustCompile(`^[A-Za-z0-9_]+(\.[A-Za-z0-9_\-]+)*$`)

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()
	_ = v.RegisterValidation("package_name", validatePackageName)
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

// FormatValidationError turns validator errors into a field -> message map
// without exposing Go struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidRequest
		return errs
	}

	for _, e := range validationErrors {
		field := jsonFieldName(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "package_name":
			errs[field] = "Invalid package name"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s characters", e.Param())
		case "excludesall":
			errs[field] = "Contains invalid characters"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// jsonFieldName maps PackageName to package_name.
func jsonFieldName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func validatePackageName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if name == "" {
		return true
	}
	return packageNamePattern.MatchString(name)
}
