package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/clientescrm/api-clientes/internal/core/domain"
	"github.com/clientescrm/api-clientes/internal/core/ports"
)

// UserRepository reads credential records from the usuarios table, joining
// the role name in from roles. Inactive users are treated as nonexistent.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx,
		`SELECT u.username, u.password_hash, r.nombre
		 FROM usuarios u
		 JOIN roles r ON u.rol_id = r.id
		 WHERE u.username = $1 AND u.activo = TRUE`,
		username,
	).Scan(&u.Username, &u.PasswordHash, &u.Role)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find usuario: %w", err)
	}

	return &u, nil
}

// compile-time interface check
var _ ports.UserRepository = (*UserRepository)(nil)
