package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

type stubUserCache struct {
	entries map[string]*domain.User
	getErr  error
	setErr  error
	gets    int
	sets    int
}

func newStubUserCache() *stubUserCache {
	return &stubUserCache{entries: make(map[string]*domain.User)}
}

func (c *stubUserCache) Get(_ context.Context, userID string) (*domain.User, error) {
	c.gets++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return cloneUser(c.entries[userID]), nil
}

func (c *stubUserCache) Set(_ context.Context, user *domain.User) error {
	c.sets++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[user.ID] = cloneUser(user)
	return nil
}

func TestUserService_GetProfile_CacheMiss(t *testing.T) {
	repo := newStubUserRepo()
	created, _ := repo.Create(context.Background(), &domain.User{Name: "Alice", Email: "alice@x.com"})

	cache := newStubUserCache()
	svc := NewUserService(repo, cache, zerolog.Nop())

	user, err := svc.GetProfile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if user.Email != "alice@x.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if cache.sets != 1 {
		t.Fatalf("expected profile to be cached after miss, sets=%d", cache.sets)
	}
}

func TestUserService_GetProfile_CacheHit(t *testing.T) {
	repo := newStubUserRepo()
	cache := newStubUserCache()
	cache.entries["user-9"] = &domain.User{ID: "user-9", Name: "Bob", Email: "bob@x.com"}

	svc := NewUserService(repo, cache, zerolog.Nop())

	user, err := svc.GetProfile(context.Background(), "user-9")
	if err != nil {
		t.Fatalf("GetProfile returned error: %v", err)
	}
	if user.Name != "Bob" {
		t.Fatalf("expected cached user, got %+v", user)
	}
	if cache.sets != 0 {
		t.Fatalf("cache hit must not write back, sets=%d", cache.sets)
	}
}

func TestUserService_GetProfile_CacheFailureFallsBack(t *testing.T) {
	repo := newStubUserRepo()
	created, _ := repo.Create(context.Background(), &domain.User{Name: "Alice", Email: "alice@x.com"})

	cache := newStubUserCache()
	cache.getErr = errors.New("redis down")

	svc := NewUserService(repo, cache, zerolog.Nop())

	user, err := svc.GetProfile(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("cache failure must not fail the request: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubUserCache(), zerolog.Nop())

	if _, err := svc.GetProfile(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
