package service

import (
	"context"
	"errors"
	"time"

	"github.com/mindxDoc/tester-backend/internal/core/auth"
	"github.com/mindxDoc/tester-backend/internal/core/domain"
	"github.com/mindxDoc/tester-backend/internal/core/ports"
)

// AuthService implements registration and login on top of the user
// repository, the password hasher, and the token codec.
type AuthService struct {
	repo   ports.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenCodec
}

func NewAuthService(repo ports.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenCodec) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates an account and returns a freshly issued token for it.
// A second registration with the same email fails with domain.ErrUserExists.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if name == "" || email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return "", domain.ErrUserExists
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(created.ID)
}

// Login verifies the credentials and returns a token for the account.
// An unknown email and a bad password are distinct errors on purpose; the
// original API reports "Invalid Credential" and "Wrong password"
// respectively, and both map to the same 401 class upstream.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := s.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrWrongPassword
	}

	return s.tokens.Issue(user.ID)
}
