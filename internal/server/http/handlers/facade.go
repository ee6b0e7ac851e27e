package handlers

import (
	"context"

	"github.com/L1nkStart/authsvc/internal/domain/model"
	pkgAuth "github.com/L1nkStart/authsvc/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, email, password string) (*model.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
	Profile(ctx context.Context, userID int64) (*model.User, error)
}

// Pinger reports backing store connectivity for the health endpoint.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
