package service

import (
	"context"
	"errors"
)

// ErrCredentialsRejected is wrapped by AuthService implementations when the
// identity provider refuses the username/password pair.
var ErrCredentialsRejected = errors.New("credentials rejected by identity provider")

// AuthorizationToken is the bundle returned by the identity provider's token
// endpoint. It is opaque to the application layer.
type AuthorizationToken struct {
	AccessToken      string
	ExpiresIn        int
	RefreshToken     string
	RefreshExpiresIn int
	TokenType        string
	NotBeforePolicy  int
	SessionState     string
	Scope            string
}

// AuthService exchanges user credentials for an authorization token.
type AuthService interface {
	// AuthorizeByPassword performs a resource owner password grant. scope may be nil.
	AuthorizeByPassword(ctx context.Context, username, password string, scope *string) (AuthorizationToken, error)
}
