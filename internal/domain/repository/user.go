package repository

import (
	"context"

	"github.com/L1nkStart/authsvc/internal/domain/model"
)

// UserRepository describes persistence operations for users.
//
// Create reports domain errors.ErrAlreadyExists when the email is taken.
// The storage uniqueness constraint is the source of truth for duplicates;
// any lookup preceding Create is only a courtesy check.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
