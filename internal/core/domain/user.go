package domain

import "errors"

const (
	RoleAdmin   = "admin"
	RoleUsuario = "usuario"
)

var ErrInvalidCredentials = errors.New("credenciales inválidas")
var ErrUserNotFound = errors.New("usuario no encontrado")
var ErrInvalidToken = errors.New("token inválido o expirado")
var ErrForbidden = errors.New("permisos insuficientes")

// User models a credential record from the usuarios table. The role name is
// joined in from the roles table; functionally it is just a label. Records
// are read-only from this system's perspective; there is no registration
// endpoint.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
