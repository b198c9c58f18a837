package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/clientescrm/api-clientes/internal/core/service"
)

// Auth validates the bearer token and injects its claims into the request
// context. A token whose claims are missing subject or role is rejected even
// when the signature is valid.
func Auth(tokens *service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "falta la cabecera de autorización")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "cabecera de autorización inválida")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido o expirado")
			}
			if claims.Subject == "" || claims.Role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido")
			}

			c.Set("username", claims.Subject)
			c.Set("role", claims.Role)

			return next(c)
		}
	}
}
