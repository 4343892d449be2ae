package auth

import (
	"fmt"

	"chatsim/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginRequest carries the login form fields. The password is accepted but
// never checked: this surface is a stand-in for real authentication.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string
}

// ValidateLogin rejects empty or malformed email addresses. Any
// syntactically plausible address is accepted.
func ValidateLogin(req LoginRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}
