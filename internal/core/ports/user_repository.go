package ports

import (
	"context"

	"github.com/clientescrm/api-clientes/internal/core/domain"
)

// UserRepository is the read-only credential store. Only active users are
// returned; a missing or inactive user yields domain.ErrUserNotFound.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
