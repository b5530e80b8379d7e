package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
	"github.com/mindxDoc/tester-backend/internal/core/ports"
)

type stubBookRepo struct {
	byID   map[int64]*domain.Book
	nextID int64
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{byID: make(map[int64]*domain.Book)}
}

func cloneBook(b *domain.Book) *domain.Book {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

func (r *stubBookRepo) ListByUser(_ context.Context, userID string) ([]*domain.Book, error) {
	out := make([]*domain.Book, 0)
	for _, b := range r.byID {
		if b.UserID == userID {
			out = append(out, cloneBook(b))
		}
	}
	return out, nil
}

func (r *stubBookRepo) Create(_ context.Context, book *domain.Book) (*domain.Book, error) {
	created := cloneBook(book)
	r.nextID++
	created.ID = r.nextID
	r.byID[created.ID] = cloneBook(created)
	return created, nil
}

func (r *stubBookRepo) FindByID(_ context.Context, id int64) (*domain.Book, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	return cloneBook(b), nil
}

func (r *stubBookRepo) Update(_ context.Context, book *domain.Book) (*domain.Book, error) {
	existing, ok := r.byID[book.ID]
	if !ok || existing.UserID != book.UserID {
		return nil, domain.ErrBookNotOwned
	}
	existing.Title = book.Title
	existing.Author = book.Author
	existing.Review = book.Review
	return cloneBook(existing), nil
}

func (r *stubBookRepo) Delete(_ context.Context, id int64, userID string) error {
	existing, ok := r.byID[id]
	if !ok || existing.UserID != userID {
		return domain.ErrBookNotOwned
	}
	delete(r.byID, id)
	return nil
}

func TestBookService_CreateAndList(t *testing.T) {
	repo := newStubBookRepo()
	svc := NewBookService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "user-1", ports.CreateBookInput{
		Title:  "Sapiens",
		Author: "Yuval Noah Harari",
		Review: "great",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if created.UserID != "user-1" {
		t.Fatalf("expected owner user-1, got %q", created.UserID)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	books, err := svc.List(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Sapiens" {
		t.Fatalf("unexpected list: %+v", books)
	}

	other, err := svc.List(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("list must be scoped to the owner, got %d items", len(other))
	}
}

func TestBookService_Get_NotFound(t *testing.T) {
	svc := NewBookService(newStubBookRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), 42); err != domain.ErrBookNotFound {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookService_Update_NotOwned(t *testing.T) {
	repo := newStubBookRepo()
	svc := NewBookService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "user-1", ports.CreateBookInput{Title: "T", Author: "A"})

	_, err := svc.Update(context.Background(), created.ID, "user-2", ports.UpdateBookInput{Title: "X", Author: "Y"})
	if err != domain.ErrBookNotOwned {
		t.Fatalf("expected ErrBookNotOwned, got %v", err)
	}
}

func TestBookService_UpdateAndDelete(t *testing.T) {
	repo := newStubBookRepo()
	svc := NewBookService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "user-1", ports.CreateBookInput{Title: "T", Author: "A"})

	updated, err := svc.Update(context.Background(), created.ID, "user-1", ports.UpdateBookInput{
		Title:  "T2",
		Author: "A2",
		Review: "better",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Title != "T2" || updated.Review != "better" {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	if err := svc.Delete(context.Background(), created.ID, "user-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID, "user-1"); err != domain.ErrBookNotOwned {
		t.Fatalf("expected ErrBookNotOwned after delete, got %v", err)
	}
}
