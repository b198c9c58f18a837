package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/clientescrm/api-clientes/internal/api/metrics"
	"github.com/clientescrm/api-clientes/internal/core/domain"
	"github.com/clientescrm/api-clientes/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer operations.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /clientes.
//
// @Summary      Listar clientes
// @Tags         clientes
// @Produce      json
// @Success      200  {array}  customerResponse
// @Failure      500  {object}  errorResponse
// @Router       /clientes [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCustomerResponses(customers))
}

// Get handles GET /clientes/:id.
//
// @Summary      Obtener un cliente por id
// @Tags         clientes
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {object}  customerResponse
// @Failure      404  {object}  errorResponse
// @Router       /clientes/{id} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "cliente no encontrado"})
	}

	customer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "cliente no encontrado"})
		}
		return err
	}

	return c.JSON(http.StatusOK, toCustomerResponse(customer))
}

// Create handles POST /clientes.
//
// @Summary      Crear un cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  customerRequest  true  "Datos del cliente"
// @Success      201  {object}  customerResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /clientes [post]
func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo de la petición inválido"})
	}

	created, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return h.writeError(c, err)
	}

	metrics.CustomersCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toCustomerResponse(created))
}

// Update handles PUT /clientes/:id. All fields are replaced; there are no
// partial updates.
//
// @Summary      Actualizar un cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int              true  "ID del cliente"
// @Param        body  body  customerRequest  true  "Datos del cliente"
// @Success      200  {object}  customerResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /clientes/{id} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "cliente no encontrado"})
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "cuerpo de la petición inválido"})
	}

	updated, err := h.service.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return h.writeError(c, err)
	}

	metrics.CustomersUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, toCustomerResponse(updated))
}

// Delete handles DELETE /clientes/:id.
//
// @Summary      Eliminar un cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "ID del cliente"
// @Success      204  "sin contenido"
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /clientes/{id} [delete]
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "cliente no encontrado"})
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: "cliente no encontrado"})
		}
		return err
	}

	metrics.CustomersDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// writeError maps write-path failures onto the response contract. Anything
// outside the taxonomy propagates to the central error handler as a 500.
func (h *CustomerHandler) writeError(c echo.Context, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		for _, f := range ve.Fields {
			metrics.ValidationFailuresTotal.WithLabelValues(f.Campo).Inc()
		}
		return c.JSON(http.StatusUnprocessableEntity, errorResponse{Error: "datos inválidos", Fields: ve.Fields})
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "cliente no encontrado"})
	case errors.Is(err, domain.ErrDuplicateEmail):
		return c.JSON(http.StatusConflict, errorResponse{Error: "ya existe un cliente con ese email"})
	default:
		return err
	}
}

func (req customerRequest) toInput() ports.CustomerInput {
	return ports.CustomerInput{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
	}
}

// parseID extracts the numeric path id. A non-numeric id identifies no
// resource and is treated as not found.
func parseID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
