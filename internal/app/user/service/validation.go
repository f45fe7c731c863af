package service

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
	customErrors "github.com/yaskovbs/My-Second-Project/internal/domain/user/errors"
)

// NewValidator returns a validator with the custom "strongpwd" rule:
// at least 8 characters, one lowercase, one uppercase, one digit and one
// symbol.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("strongpwd", func(fl validator.FieldLevel) bool {
		pwd := fl.Field().String()
		if len(pwd) < 8 {
			return false
		}
		var hasLower, hasUpper, hasDigit, hasSymbol bool
		for _, r := range pwd {
			switch {
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsDigit(r):
				hasDigit = true
			case unicode.IsPunct(r) || unicode.IsSymbol(r):
				hasSymbol = true
			}
		}
		return hasLower && hasUpper && hasDigit && hasSymbol
	})
	return v
}

// toValidationError flattens validator output into the domain
// ValidationError so the transport can report every violated rule.
func toValidationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return customErrors.NewInvalidArgument(err.Error())
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldMessage(fe))
	}
	return &customErrors.ValidationError{Details: details}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	case "strongpwd":
		return fmt.Sprintf("%s must be at least 8 characters and contain a lowercase letter, an uppercase letter, a digit and a symbol", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
