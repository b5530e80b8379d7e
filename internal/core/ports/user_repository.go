package ports

import (
	"context"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
type UserRepository interface {
	// FindByEmail returns the user whose email exactly matches, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByID returns the user with the given id, or domain.ErrUserNotFound.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create persists a new user and returns it with its assigned id.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
