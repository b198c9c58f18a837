package domain

import "errors"

var ErrCustomerNotFound = errors.New("cliente no encontrado")
var ErrDuplicateEmail = errors.New("ya existe un cliente con ese email")

// Customer is the core aggregate persisted in the clientes table.
// Telefono and Direccion are optional; nil means absent (NULL in storage).
type Customer struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Email     string  `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

// CustomerFields holds validated, normalized customer data ready to persist.
// Only the validator produces values of this type.
type CustomerFields struct {
	Nombre    string
	Apellido  string
	Email     string
	Telefono  *string
	Direccion *string
}
