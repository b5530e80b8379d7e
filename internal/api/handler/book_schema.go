package handler

import (
	"time"

	"github.com/mindxDoc/tester-backend/internal/core/domain"
)

type createBookRequest struct {
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author" validate:"required"`
	Review string `json:"review"`
}

type updateBookRequest struct {
	Title  string `json:"title"  validate:"required"`
	Author string `json:"author" validate:"required"`
	Review string `json:"review"`
}

// bookResponse is the transport view of a review, intentionally separate
// from the domain type so the JSON contract is not coupled to internal
// changes.
type bookResponse struct {
	ID        int64     `json:"book_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"book_title"`
	Author    string    `json:"book_author"`
	Review    string    `json:"book_review"`
	CreatedAt time.Time `json:"created_at"`
	OwnerName string    `json:"user_name,omitempty"`
}

type bookData struct {
	Book bookResponse `json:"book"`
}

type bookEnvelope struct {
	Status string   `json:"status"`
	Data   bookData `json:"data"`
}

type bookListData struct {
	Book []bookResponse `json:"book"`
}

type bookListEnvelope struct {
	Status  string       `json:"status"`
	Results int          `json:"results"`
	Data    bookListData `json:"data"`
}

func toBookResponse(b *domain.Book) bookResponse {
	return bookResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		Title:     b.Title,
		Author:    b.Author,
		Review:    b.Review,
		CreatedAt: b.CreatedAt.UTC(),
		OwnerName: b.OwnerName,
	}
}
