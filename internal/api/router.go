package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/edukita/learning-api/docs"
	"github.com/edukita/learning-api/internal/api/handler"
	"github.com/edukita/learning-api/internal/api/middleware"
	"github.com/edukita/learning-api/internal/core/domain"
	"github.com/edukita/learning-api/internal/core/ports"
	"github.com/edukita/learning-api/internal/core/service"
	mongodb "github.com/edukita/learning-api/internal/infrastructure/db/mongo"
	redisdb "github.com/edukita/learning-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, issuer ports.TokenIssuer, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("learning_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	ledger := redisdb.NewRevocationLedger(rdb)
	authService := service.NewAuthService(userRepo, issuer, ledger, log)
	userService := service.NewUserService(userRepo, log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, authService)
	authMiddleware := middleware.Auth(issuer, ledger)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- User routes (all behind auth) ---
	users := e.Group("/users", authMiddleware)
	users.GET("/profile", userHandler.Profile)
	users.PUT("/profile", userHandler.UpdateProfile)
	users.POST("/change-password", userHandler.ChangePassword)
	users.GET("/students", userHandler.ListStudents, middleware.RBAC(domain.RoleTeacher))
	users.GET("", userHandler.ListUsers)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
