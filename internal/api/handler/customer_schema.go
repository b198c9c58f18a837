package handler

import "github.com/clientescrm/api-clientes/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Fields is only present on validation failures.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// customerRequest is the write payload for both create and update; an update
// replaces all fields. Validation and normalization happen in the service
// layer, so the transport type carries raw strings.
type customerRequest struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono,omitempty"`
	Direccion string `json:"direccion,omitempty"`
}

// customerResponse is intentionally separate from the domain type so the
// JSON contract is not coupled to internal changes.
type customerResponse struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Apellido  string  `json:"apellido"`
	Email     string  `json:"email"`
	Telefono  *string `json:"telefono"`
	Direccion *string `json:"direccion"`
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Direccion: c.Direccion,
	}
}

func toCustomerResponses(customers []domain.Customer) []customerResponse {
	out := make([]customerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, toCustomerResponse(&customers[i]))
	}
	return out
}
