package dto

import (
	"time"

	domainErrors "github.com/L1nkStart/authsvc/internal/domain/errors"
	"github.com/L1nkStart/authsvc/internal/domain/model"
)

// RegisterRequest describes the email/password registration payload.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest describes the email/password login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPayload is the public projection of an account. The password hash
// never leaves the server.
type UserPayload struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserPayload converts a domain user into its public projection.
func NewUserPayload(u *model.User) UserPayload {
	return UserPayload{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt}
}

// AuthData carries the user and issued token of a successful register/login.
type AuthData struct {
	User  UserPayload `json:"user"`
	Token string      `json:"token"`
}

// ProfileData wraps the account returned by the profile endpoint.
type ProfileData struct {
	User UserPayload `json:"user"`
}

// Response is the uniform JSON envelope of every endpoint.
type Response struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message,omitempty"`
	Data    any                       `json:"data,omitempty"`
	Error   string                    `json:"error,omitempty"`
	Details []domainErrors.FieldError `json:"details,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// Err builds a failure envelope with a caller-safe message.
func Err(message string) Response {
	return Response{Success: false, Error: message}
}

// ErrWithDetails builds a failure envelope listing violated fields.
func ErrWithDetails(message string, details []domainErrors.FieldError) Response {
	return Response{Success: false, Error: message, Details: details}
}
