package ports

import (
	"context"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

// CreateBookInput carries the fields of a new review.
type CreateBookInput struct {
	Title  string
	Author string
	Review string
}

// UpdateBookInput carries the replacement fields for an existing review.
type UpdateBookInput struct {
	Title  string
	Author string
	Review string
}

// BookService defines the book review use cases. Every operation is scoped
// to the authenticated user; mutations on somebody else's review fail with
// domain.ErrBookNotOwned.
type BookService interface {
	List(ctx context.Context, userID string) ([]*domain.Book, error)
	Create(ctx context.Context, userID string, input CreateBookInput) (*domain.Book, error)
	Get(ctx context.Context, id int64) (*domain.Book, error)
	Update(ctx context.Context, id int64, userID string, input UpdateBookInput) (*domain.Book, error)
	Delete(ctx context.Context, id int64, userID string) error
}
