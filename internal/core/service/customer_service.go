package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clientescrm/api-clientes/internal/core/domain"
	"github.com/clientescrm/api-clientes/internal/core/ports"
)

// CustomerService orchestrates validation and persistence for customers.
// No caching and no cross-call state: concurrent writes racing on the same
// email are resolved by the storage layer's unique constraint.
type CustomerService struct {
	repo      ports.CustomerRepository
	validator *CustomerValidator
	log       zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, validator *CustomerValidator, log zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, validator: validator, log: log}
}

// List returns every customer. No filtering, no pagination.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Get returns a single customer or domain.ErrCustomerNotFound.
func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the payload, inserts it, and re-reads the stored record
// so the caller sees the server-assigned id and normalized fields.
func (s *CustomerService) Create(ctx context.Context, input ports.CustomerInput) (*domain.Customer, error) {
	fields, err := s.validator.Validate(input)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, *fields)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("cliente_id", id).Str("email", fields.Email).Msg("customer created")
	return s.repo.GetByID(ctx, id)
}

// Update replaces all fields of an existing customer. The existence check
// runs first so a missing id surfaces as not-found rather than a validation
// failure.
func (s *CustomerService) Update(ctx context.Context, id int64, input ports.CustomerInput) (*domain.Customer, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields, err := s.validator.Validate(input)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, *fields); err != nil {
		return nil, err
	}

	s.log.Info().Int64("cliente_id", id).Msg("customer updated")
	return s.repo.GetByID(ctx, id)
}

// Delete removes a customer by id. A delete that matches no rows reports
// not-found, even when the preceding existence check passed.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}

	s.log.Info().Int64("cliente_id", id).Msg("customer deleted")
	return nil
}
