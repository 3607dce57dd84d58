package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ratemart/store-rating-system/internal/api/handler"
	"github.com/ratemart/store-rating-system/internal/api/middleware"
	"github.com/ratemart/store-rating-system/internal/core/domain"
	"github.com/ratemart/store-rating-system/internal/core/service"
	"github.com/ratemart/store-rating-system/internal/core/token"
	"github.com/ratemart/store-rating-system/internal/infrastructure/db/postgres"
	redisinfra "github.com/ratemart/store-rating-system/internal/infrastructure/db/redis"
	"github.com/ratemart/store-rating-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storeratings"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	ratingRepo := postgres.NewRatingRepository(pool)
	limiter := redisinfra.NewLoginLimiter(rdb)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens, limiter, log)
	userService := service.NewUserService(userRepo, storeRepo, ratingRepo, log)
	storeService := service.NewStoreService(storeRepo, userRepo, log)
	ratingService := service.NewRatingService(ratingRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(userService, storeService)
	ownerHandler := handler.NewOwnerHandler(storeService, ratingService)
	storeHandler := handler.NewStoreHandler(storeService, ratingService)

	authenticated := middleware.Auth(tokens)

	// --- Public auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.PUT("/password", authHandler.UpdatePassword, authenticated)

	// --- Admin surface ---
	admin := e.Group("/api/admin", authenticated, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.POST("/users", adminHandler.CreateUser)
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/stores", adminHandler.CreateStore)
	admin.GET("/stores", adminHandler.ListStores)

	// --- Store-owner surface ---
	owner := e.Group("/api/owner", authenticated, middleware.RequireRole(domain.RoleStoreOwner))
	owner.GET("/stores", ownerHandler.ListStores)
	owner.POST("/stores", ownerHandler.CreateStore)
	owner.GET("/ratings", ownerHandler.ListRatings)

	// --- Shopper surface ---
	stores := e.Group("/api/stores", authenticated, middleware.RequireRole(domain.RoleUser))
	stores.GET("", storeHandler.List)
	stores.POST("/:id/ratings", storeHandler.Rate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
