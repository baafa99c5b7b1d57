package identity

import (
	"context"
	"errors"
)

// ErrIdentityConflict is returned when the identity provider already knows the user.
var ErrIdentityConflict = errors.New("user already exists in identity provider")

// UserRegistration is what the identity provider needs to create an account.
type UserRegistration struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// Provider manages accounts in the external identity provider.
type Provider interface {
	// CreateUser creates the account and returns its subject identifier.
	CreateUser(ctx context.Context, reg UserRegistration) (string, error)
	DeleteUser(ctx context.Context, subject string) error
}
