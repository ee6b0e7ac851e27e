package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/L1nkStart/authsvc/internal/domain/errors"
	"github.com/L1nkStart/authsvc/internal/domain/model"
	"github.com/L1nkStart/authsvc/internal/domain/repository"
	pkgAuth "github.com/L1nkStart/authsvc/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns it with a fresh auth token.
func (u *AuthUseCase) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if err := validateRegistration(email, password); err != nil {
		return nil, "", err
	}

	// Courtesy lookup for a friendlier conflict error. The insert below
	// still hits the uniqueness constraint, which stays authoritative for
	// concurrent registrations of the same email.
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil, "", domainErrors.ErrAlreadyExists
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, "", err
	}

	hash, err := u.hasher.Hash(ctx, password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, email, hash)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Email)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Authenticate validates credentials and returns the account with a token.
// Unknown email and wrong password produce the same error so responses
// cannot be used to probe which addresses are registered.
func (u *AuthUseCase) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	email = NormalizeEmail(email)
	if err := validateLogin(email, password); err != nil {
		return nil, "", err
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(ctx, usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(usr.ID, usr.Email)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// ParseToken verifies a token and extracts the claims encoded in it.
func (u *AuthUseCase) ParseToken(token string) (*pkgAuth.Claims, error) {
	if token == "" {
		return nil, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetProfile fetches an account by identifier.
func (u *AuthUseCase) GetProfile(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
