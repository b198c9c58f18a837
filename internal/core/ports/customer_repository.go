package ports

import (
	"context"

	"github.com/clientescrm/api-clientes/internal/core/domain"
)

// CustomerRepository defines persistence for customer records. Every method
// is a single round trip; no transaction spans multiple calls. Implementations
// must map a unique-email violation to domain.ErrDuplicateEmail so callers can
// distinguish it from other persistence failures.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, fields domain.CustomerFields) (int64, error)
	Update(ctx context.Context, id int64, fields domain.CustomerFields) error
	Delete(ctx context.Context, id int64) (int64, error)
}
