package ports

import "context"

// AuthService verifies credentials and issues signed access tokens.
// Bad username and bad password are indistinguishable to the caller: both
// surface as domain.ErrInvalidCredentials.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
}
