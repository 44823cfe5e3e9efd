package form

import (
	"strings"

	apperrors "github.com/umalmyha/crmconsole/internal/errors"
	"github.com/umalmyha/crmconsole/internal/validation"
)

// Login is state of email sign in form
type Login struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// Validate checks login form, password is never trimmed
func (f *Login) Validate(v *validation.Validator) error {
	f.Email = strings.TrimSpace(f.Email)
	return v.Struct(f)
}

// Signup is state of registration form
type Signup struct {
	Name            string `form:"name" validate:"required"`
	Email           string `form:"email" validate:"required,email"`
	Password        string `form:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `form:"confirmPassword" validate:"required"`
}

// Validate checks registration form, passwords must match
func (f *Signup) Validate(v *validation.Validator) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)

	vErr := &apperrors.ValidationErr{}
	vErr.Merge(v.Collect(f))
	if f.ConfirmPassword != "" && f.Password != f.ConfirmPassword {
		vErr.Violation("confirmPassword", apperrors.NoIndex, "passwords don't match")
	}
	return vErr.OrNil()
}
