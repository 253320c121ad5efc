package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-fin-tracker/models"
)

// UserValidator implements [Validator] for the account payloads: registration,
// login, name change and password change.
type UserValidator struct{}

// NewUserValidator constructs a [UserValidator] and returns it as the
// [Validator] interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the payload type. Supported types:
//   - models.RegisterRequest
//   - models.Credentials
//   - models.NameChange
//   - models.PasswordChange
//
// Pointers to them are accepted too.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)
	case models.Credentials:
		return v.validateCredentials(value)
	case *models.Credentials:
		return v.validateCredentials(*value)
	case models.NameChange:
		return validateName(value.Name)
	case *models.NameChange:
		return validateName(value.Name)
	case models.PasswordChange:
		return v.validatePasswordChange(value)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value)
	}
	return ErrUnsupportedType
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = validateName(req.Name)
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldPassword:
			err = validatePassword(f, req.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// validateCredentials only checks presence: the login endpoint answers every
// other failure with the same "invalid credentials".
func (v *UserValidator) validateCredentials(c models.Credentials) error {
	if strings.TrimSpace(c.Email) == "" {
		return newFieldError(FieldEmail, "email is required")
	}
	if c.Password == "" {
		return newFieldError(FieldPassword, "password is required")
	}
	return nil
}

func (v *UserValidator) validatePasswordChange(c models.PasswordChange) error {
	if c.CurrentPassword == "" {
		return newFieldError(FieldCurrentPassword, "current password is required")
	}
	if err := validatePassword(FieldNewPassword, c.NewPassword); err != nil {
		return err
	}
	if c.NewPassword != c.ConfirmPassword {
		return newFieldError(FieldConfirmPassword, "passwords do not match")
	}
	return nil
}

func validateName(name string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	if n < MinNameLength {
		return newFieldError(FieldName, "name must be at least 2 characters")
	}
	if n > MaxNameLength {
		return newFieldError(FieldName, "name is too long")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return newFieldError(FieldEmail, "email is required")
	}
	if len(email) > MaxEmailLength {
		return newFieldError(FieldEmail, "email is too long")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return newFieldError(FieldEmail, "invalid email")
	}
	return nil
}

func validatePassword(field, password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return newFieldError(field, "password must be at least 6 characters")
	}
	if len(password) > MaxPasswordBytes {
		return newFieldError(field, "password must be at most 72 bytes")
	}
	return nil
}
