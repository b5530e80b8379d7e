package domain

import (
	"errors"
	"time"
)

var ErrBookNotFound = errors.New("book not found")
var ErrBookNotOwned = errors.New("book review not owned by user")

// Book is a single book review owned by a user.
type Book struct {
	ID        int64     `json:"book_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"book_title"`
	Author    string    `json:"book_author"`
	Review    string    `json:"book_review"`
	CreatedAt time.Time `json:"created_at"`
	// OwnerName is the reviewer's display name, populated on list queries
	// that join against the users table.
	OwnerName string `json:"user_name,omitempty"`
}
