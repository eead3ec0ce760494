package identity

import (
	"context"
	"errors"
)

// Identity is the narrow view of a user the rest of the system depends on.
// The provider may know much more; only the opaque id and email cross this
// boundary.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ErrInvalidToken covers bad, missing, and expired tokens alike. The caller
// maps it to 401.
var ErrInvalidToken = errors.New("invalid token")

// Provider resolves an opaque bearer token to an identity.
type Provider interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}
