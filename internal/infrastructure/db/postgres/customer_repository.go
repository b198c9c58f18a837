package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/clientescrm/api-clientes/internal/core/domain"
	"github.com/clientescrm/api-clientes/internal/core/ports"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

// CustomerRepository persists customers in the clientes table. Duplicate
// emails are not pre-checked here; the table's UNIQUE constraint is the
// single arbiter, which also resolves concurrent writes racing on the same
// email.
type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, nombre, apellido, email, telefono, direccion
		 FROM clientes
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Email, &c.Telefono, &c.Direccion); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}

	return customers, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, nombre, apellido, email, telefono, direccion
		 FROM clientes
		 WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Nombre, &c.Apellido, &c.Email, &c.Telefono, &c.Direccion)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cliente: %w", err)
	}

	return &c, nil
}

func (r *CustomerRepository) Create(ctx context.Context, fields domain.CustomerFields) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO clientes (nombre, apellido, email, telefono, direccion)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		fields.Nombre, fields.Apellido, fields.Email, fields.Telefono, fields.Direccion,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert cliente: %w", err)
	}

	return id, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, fields domain.CustomerFields) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE clientes
		 SET nombre = $1, apellido = $2, email = $3, telefono = $4, direccion = $5
		 WHERE id = $6`,
		fields.Nombre, fields.Apellido, fields.Email, fields.Telefono, fields.Direccion, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("update cliente: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cliente rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}

	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete cliente: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete cliente rows affected: %w", err)
	}

	return affected, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// compile-time interface check
var _ ports.CustomerRepository = (*CustomerRepository)(nil)
