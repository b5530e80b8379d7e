package ports

import "context"

// AuthService defines the registration and login use cases. Both return a
// signed token whose subject is the (new or existing) user's id.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}
