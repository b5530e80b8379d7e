package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrWrongPassword = errors.New("wrong password")

// User models a registered account.
//
// PasswordHash is the bcrypt output stored at registration time. It is never
// serialized in API responses and never compared against plaintext directly.
type User struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"user_name"`
	Email        string    `json:"user_email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthorizedIdentity is the request-scoped identity produced by the auth
// middleware from a validated token. It lives only for the duration of the
// request and carries no more than the token subject.
type AuthorizedIdentity struct {
	UserID string
}
