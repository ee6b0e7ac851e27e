package app

import (
	"context"

	"github.com/L1nkStart/authsvc/internal/domain/model"
	pkgAuth "github.com/L1nkStart/authsvc/internal/pkg/auth"
	"github.com/L1nkStart/authsvc/internal/usecase"
)

// AccountFacade exposes account operations to the transport layer.
type AccountFacade struct {
	auth *usecase.AuthUseCase
}

func NewAccountFacade(auth *usecase.AuthUseCase) *AccountFacade {
	return &AccountFacade{auth: auth}
}

func (f *AccountFacade) Register(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, email, password)
}

func (f *AccountFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *AccountFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *AccountFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetProfile(ctx, userID)
}
