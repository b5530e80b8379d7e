package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	"github.com/mindxDoc/tester-backend/internal/api/handler"
	"github.com/mindxDoc/tester-backend/internal/api/middleware"
	"github.com/mindxDoc/tester-backend/internal/core/auth"
	"github.com/mindxDoc/tester-backend/internal/core/service"
	"github.com/mindxDoc/tester-backend/internal/infrastructure/config"
	"github.com/mindxDoc/tester-backend/internal/infrastructure/db/postgres"
	redisdb "github.com/mindxDoc/tester-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookreview"))

	// --- Dependencies ---
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokens := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := postgres.NewUserRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	userCache := redisdb.NewUserCache(rdb)

	authService := service.NewAuthService(userRepo, hasher, tokens)
	userService := service.NewUserService(userRepo, userCache, log)
	bookService := service.NewBookService(bookRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	bookHandler := handler.NewBookHandler(bookService)

	authorize := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/verify", authHandler.Verify, authorize)

	// --- Protected API routes ---
	e.GET("/api/v1/user", userHandler.Get, authorize)

	books := e.Group("/api/v1/books", authorize)
	books.GET("", bookHandler.List)
	books.POST("", bookHandler.Create)
	books.GET("/:id", bookHandler.Get)
	books.PUT("/:id", bookHandler.Update)
	books.DELETE("/:id", bookHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoswagger.WrapHandler)

	return e
}
