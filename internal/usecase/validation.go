package usecase

import (
	"net/mail"
	"strings"

	domainErrors "github.com/L1nkStart/authsvc/internal/domain/errors"
)

const minPasswordLength = 6

// NormalizeEmail lowercases and trims an address; uniqueness is enforced
// over the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether the address is syntactically valid.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// validateRegistration collects every violated field instead of failing
// on the first one.
func validateRegistration(email, password string) error {
	var fields []domainErrors.FieldError
	if !ValidEmail(email) {
		fields = append(fields, domainErrors.FieldError{Field: "email", Message: "valid email is required"})
	}
	if len(password) < minPasswordLength {
		fields = append(fields, domainErrors.FieldError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(fields) > 0 {
		return &domainErrors.ValidationError{Fields: fields}
	}
	return nil
}

func validateLogin(email, password string) error {
	var fields []domainErrors.FieldError
	if !ValidEmail(email) {
		fields = append(fields, domainErrors.FieldError{Field: "email", Message: "valid email is required"})
	}
	if password == "" {
		fields = append(fields, domainErrors.FieldError{Field: "password", Message: "password is required"})
	}
	if len(fields) > 0 {
		return &domainErrors.ValidationError{Fields: fields}
	}
	return nil
}
