package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/clientescrm/api-clientes/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Fields
// is only populated for validation failures.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures as a structured field list.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusUnprocessableEntity, errorResponse{
				Error:  "datos inválidos",
				Fields: ve.Fields,
			})
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.) and the
	// short-circuit errors raised by the Auth middleware.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "credenciales inválidas"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "token inválido o expirado"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "permisos insuficientes"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return http.StatusNotFound, "cliente no encontrado"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "ya existe un cliente con ese email"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "error interno del servidor"
}
