package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

type BookRepository struct {
	db *sql.DB
}

func NewBookRepository(db *sql.DB) *BookRepository {
	return &BookRepository{db: db}
}

func (r *BookRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Book, error) {
	query := `SELECT b.book_id, b.user_id, b.book_title, b.book_author, b.book_review, b.created_at, u.user_name
	          FROM users u
	          JOIN books b ON u.user_id = b.user_id
	          WHERE u.user_id = $1
	          ORDER BY b.book_id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Review, &b.CreatedAt, &b.OwnerName); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	return books, nil
}

func (r *BookRepository) Create(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	query := `INSERT INTO books (user_id, book_title, book_author, book_review)
	          VALUES ($1, $2, $3, $4)
	          RETURNING book_id, created_at`

	created := *book
	err := r.db.QueryRowContext(ctx, query,
		book.UserID, book.Title, book.Author, book.Review,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	return &created, nil
}

func (r *BookRepository) FindByID(ctx context.Context, id int64) (*domain.Book, error) {
	query := `SELECT book_id, user_id, book_title, book_author, book_review, created_at
	          FROM books WHERE book_id = $1`

	var b domain.Book
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.UserID, &b.Title, &b.Author, &b.Review, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, fmt.Errorf("find book: %w", err)
	}

	return &b, nil
}

// Update rewrites an owned review. Filtering on both book_id and user_id in
// one statement keeps the ownership check race-free.
func (r *BookRepository) Update(ctx context.Context, book *domain.Book) (*domain.Book, error) {
	query := `UPDATE books SET book_title = $1, book_author = $2, book_review = $3
	          WHERE book_id = $4 AND user_id = $5
	          RETURNING book_id, user_id, book_title, book_author, book_review, created_at`

	var b domain.Book
	err := r.db.QueryRowContext(ctx, query,
		book.Title, book.Author, book.Review, book.ID, book.UserID,
	).Scan(&b.ID, &b.UserID, &b.Title, &b.Author, &b.Review, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookNotOwned
		}
		return nil, fmt.Errorf("update book: %w", err)
	}

	return &b, nil
}

func (r *BookRepository) Delete(ctx context.Context, id int64, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM books WHERE book_id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	if n == 0 {
		return domain.ErrBookNotOwned
	}

	return nil
}
