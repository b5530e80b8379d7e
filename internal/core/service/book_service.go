package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
	"github.com/mindxDoc/tester-backend/internal/core/ports"
)

type BookService struct {
	repo ports.BookRepository
	log  zerolog.Logger
}

func NewBookService(repo ports.BookRepository, log zerolog.Logger) *BookService {
	return &BookService{repo: repo, log: log}
}

// List returns all reviews owned by userID.
func (s *BookService) List(ctx context.Context, userID string) ([]*domain.Book, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Create stores a new review owned by userID.
func (s *BookService) Create(ctx context.Context, userID string, input ports.CreateBookInput) (*domain.Book, error) {
	book := &domain.Book{
		UserID:    userID,
		Title:     input.Title,
		Author:    input.Author,
		Review:    input.Review,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, book)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to create book review")
		return nil, err
	}

	s.log.Info().Int64("book_id", created.ID).Str("user_id", userID).Msg("book review created")
	return created, nil
}

// Get returns a single review by id. Reads are not scoped by owner.
func (s *BookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	return s.repo.FindByID(ctx, id)
}

// Update rewrites the fields of an owned review. A mismatch between id and
// userID surfaces as domain.ErrBookNotOwned.
func (s *BookService) Update(ctx context.Context, id int64, userID string, input ports.UpdateBookInput) (*domain.Book, error) {
	return s.repo.Update(ctx, &domain.Book{
		ID:     id,
		UserID: userID,
		Title:  input.Title,
		Author: input.Author,
		Review: input.Review,
	})
}

// Delete removes an owned review.
func (s *BookService) Delete(ctx context.Context, id int64, userID string) error {
	return s.repo.Delete(ctx, id, userID)
}
