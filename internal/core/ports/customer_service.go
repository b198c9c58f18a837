package ports

import (
	"context"

	"github.com/clientescrm/api-clientes/internal/core/domain"
)

// CustomerInput carries raw, untrusted field values exactly as the client
// sent them. Optional fields arrive as empty strings.
type CustomerInput struct {
	Nombre    string
	Apellido  string
	Email     string
	Telefono  string
	Direccion string
}

// CustomerService orchestrates validation and persistence for customers.
// Create and Update return the record as re-read from storage so the caller
// sees exactly what was persisted.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Create(ctx context.Context, input CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id int64, input CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}
