package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
	"github.com/mindxDoc/tester-backend/internal/core/ports"
)

// UserCache abstracts the profile cache (Redis). User records are immutable
// after registration, so a positive cache entry can never go stale within
// its TTL.
type UserCache interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
}

type UserService struct {
	repo  ports.UserRepository
	cache UserCache
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache UserCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, log: log}
}

// GetProfile returns the user record for the authenticated subject. Cache
// failures are logged and fall through to the repository; they never fail
// the request.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if s.cache != nil {
		if user, err := s.cache.Get(ctx, userID); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("profile cache read failed")
		} else if user != nil {
			return user, nil
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("profile cache write failed")
		}
	}

	return user, nil
}
