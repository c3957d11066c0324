package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

// UserRepository persists User aggregates.
type UserRepository interface {
	// FindByID returns (nil, nil) when no user has the given id.
	FindByID(ctx context.Context, id user.ID) (*user.User, error)
	// Save inserts or updates.
	Save(ctx context.Context, u *user.User) error
	Delete(ctx context.Context, u *user.User) error
}
