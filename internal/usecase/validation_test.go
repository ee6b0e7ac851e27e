package usecase

import (
	"testing"

	domainErrors "github.com/L1nkStart/authsvc/internal/domain/errors"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a@x.com", "a@x.com"},
		{"  a@x.com  ", "a@x.com"},
		{"A@X.COM", "a@x.com"},
		{" MiXeD@Example.Com ", "mixed@example.com"},
	}
	for _, tt := range tests {
		if got := NormalizeEmail(tt.in); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "user.name@example.co", "u+tag@example.com"}
	for _, email := range valid {
		if !ValidEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "@x.com", "a@", "a b@x.com", "a@x.com extra"}
	for _, email := range invalid {
		if ValidEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidateRegistrationCollectsAllFields(t *testing.T) {
	err := validateRegistration("bad", "123")
	v, ok := domainErrors.AsValidation(err)
	if !ok {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(v.Fields) != 2 {
		t.Fatalf("expected both fields reported, got %+v", v.Fields)
	}

	if err := validateRegistration("a@x.com", "123456"); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}

	if err := validateRegistration("a@x.com", "12345"); err == nil {
		t.Fatal("expected five character password to fail")
	}
}

func TestValidateLogin(t *testing.T) {
	if err := validateLogin("a@x.com", "x"); err != nil {
		t.Fatalf("expected login with any non-empty password to pass, got %v", err)
	}
	if err := validateLogin("a@x.com", ""); err == nil {
		t.Fatal("expected empty password to fail")
	}
	if err := validateLogin("nope", "secret"); err == nil {
		t.Fatal("expected malformed email to fail")
	}
}
