package ports

import (
	"context"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

// BookRepository defines persistence operations for book reviews.
type BookRepository interface {
	// ListByUser returns all reviews owned by userID, joined with the owner
	// name.
	ListByUser(ctx context.Context, userID string) ([]*domain.Book, error)
	Create(ctx context.Context, book *domain.Book) (*domain.Book, error)
	// FindByID returns a review by id regardless of owner, or
	// domain.ErrBookNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Book, error)
	// Update rewrites the review fields when id belongs to userID. The
	// repository reports domain.ErrBookNotOwned when no row matches both.
	Update(ctx context.Context, book *domain.Book) (*domain.Book, error)
	// Delete removes the review when id belongs to userID, otherwise
	// domain.ErrBookNotOwned.
	Delete(ctx context.Context, id int64, userID string) error
}
