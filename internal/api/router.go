package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/issue-tracker/users-api/internal/api/handler"
	"github.com/issue-tracker/users-api/internal/api/middleware"
	"github.com/issue-tracker/users-api/internal/core/domain"
	"github.com/issue-tracker/users-api/internal/core/service"
	mongodb "github.com/issue-tracker/users-api/internal/infrastructure/db/mongo"
	redisdb "github.com/issue-tracker/users-api/internal/infrastructure/db/redis"
	"github.com/issue-tracker/users-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Every protected route runs the same fixed pre-handler order: authenticate
// first, then validate the path and query shape, then authorize. Malformed
// input is rejected with 400 before any permission check can leak
// information.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("users_api"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	userService := service.NewUserService(userRepo, log)
	permissions := service.NewPermissionService(userRepo)
	authService := service.NewAuthService(userRepo)
	codec := service.NewTokenService(jwtSecret, 24*time.Hour)
	limiter := redisdb.NewLoginLimiter(rdb)

	authHandler := handler.NewAuthHandler(authService, codec, limiter)
	userHandler := handler.NewUserHandler(userService, permissions, codec)
	authenticated := middleware.Auth(codec)
	manageUsers := middleware.RequirePermissions(permissions, domain.PermissionManageUsers)

	// --- Auth routes ---
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Users routes ---
	users := e.Group("/api/users", authenticated)
	users.GET("", userHandler.List, middleware.Pagination())
	users.GET("/:id", userHandler.Get, middleware.ValidateUserID())
	users.POST("/create", userHandler.Create, manageUsers)
	users.PATCH("/update/:id", userHandler.Update, middleware.ValidateUserID())
	users.DELETE("/delete/:id", userHandler.Delete, middleware.ValidateUserID(), manageUsers)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
