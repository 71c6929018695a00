package repository

import (
	"context"

	"github.com/almasbek/forum-api/internal/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	// Create inserts a new user. A username collision surfaces as
	// domain.ErrUsernameTaken; the unique index is the single source of
	// truth, there is no prior existence check to race against.
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)

	// FindByUsername returns domain.ErrUserNotFound when no user exists.
	// The lookup is case-sensitive.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
