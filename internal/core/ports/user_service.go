package ports

import (
	"context"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

// UserService exposes read access to the authenticated user's own record.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
}
