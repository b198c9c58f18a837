package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/clientescrm/api-clientes/internal/api/handler"
	"github.com/clientescrm/api-clientes/internal/api/middleware"
	"github.com/clientescrm/api-clientes/internal/core/domain"
	"github.com/clientescrm/api-clientes/internal/core/service"
	"github.com/clientescrm/api-clientes/internal/infrastructure/config"
	"github.com/clientescrm/api-clientes/internal/infrastructure/db/postgres"
)

// NewRouter builds the Echo instance with all routes registered. Reads on
// /clientes are public; the three mutating endpoints require a valid bearer
// token with the admin role.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("clientes"))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	tokens, err := service.NewTokenService(cfg.SecretKey, cfg.Algorithm, cfg.TokenTTL())
	if err != nil {
		return nil, err
	}

	userRepo := postgres.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, tokens, log)

	customerRepo := postgres.NewCustomerRepository(db)
	customerService := service.NewCustomerService(customerRepo, service.NewCustomerValidator(), log)

	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)

	// --- Customer routes: public read, admin-gated writes ---
	clientes := e.Group("/clientes")
	clientes.GET("", customerHandler.List)
	clientes.GET("/:id", customerHandler.Get)

	admin := clientes.Group("", middleware.Auth(tokens), middleware.RBAC(domain.RoleAdmin))
	admin.POST("", customerHandler.Create)
	admin.PUT("/:id", customerHandler.Update)
	admin.DELETE("/:id", customerHandler.Delete)

	// --- System routes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
