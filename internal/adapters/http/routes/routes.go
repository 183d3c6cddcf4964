package routes

import (
	"time"

	"staffhub/internal/adapters/http/handlers"
	"staffhub/internal/adapters/http/middleware"
	"staffhub/internal/adapters/persistence/repositories"
	"staffhub/internal/config"
	"staffhub/internal/core/services"
	"staffhub/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, sessions session.Store, cfg *config.Config) {
	// Initialize repositories
	employeeRepo := repositories.NewEmployeeRepository(db)
	userAccountRepo := repositories.NewUserAccountRepository(db)

	// Initialize services
	idleTTL := time.Duration(cfg.Session.IdleMinutes) * time.Minute
	authService := services.NewAuthService(userAccountRepo, sessions, idleTTL)
	employeeService := services.NewEmployeeService(employeeRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API group
	api := app.Group("/api", middleware.NoCacheHeaders())

	// Auth routes. Login and logout stay outside the session/CSRF
	// guards: login establishes the session, logout must stay
	// idempotent for clients whose session already expired.
	authRoutes := api.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/current-user", middleware.SessionAuth(authService), authHandler.CurrentUser)
	authRoutes.Get("/csrf", middleware.SessionAuth(authService), authHandler.CSRFToken)

	// Employee routes: session required everywhere, CSRF token
	// required on state-changing methods
	employeeRoutes := api.Group("/employees")
	employeeRoutes.Use(middleware.SessionAuth(authService))
	employeeRoutes.Use(middleware.CSRF())
	employeeRoutes.Get("/", employeeHandler.List)
	employeeRoutes.Get("/:id", employeeHandler.GetByID)
	employeeRoutes.Post("/", employeeHandler.Create)
	employeeRoutes.Put("/:id", employeeHandler.Replace)
	employeeRoutes.Delete("/:id", employeeHandler.Delete)
}
