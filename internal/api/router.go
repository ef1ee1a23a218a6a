// Package api assembles the HTTP surface: routing, global middleware, and
// the central error handler.
package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/apnakhakra/storefront-api/internal/api/handler"
	"github.com/apnakhakra/storefront-api/internal/api/middleware"
	"github.com/apnakhakra/storefront-api/internal/core/auth"
	"github.com/apnakhakra/storefront-api/internal/core/service"
	"github.com/apnakhakra/storefront-api/internal/infrastructure/config"
	mongodb "github.com/apnakhakra/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/apnakhakra/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	adminRepo := mongodb.NewAdminRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb, 0)

	hasher := auth.NewPasswordHasher(auth.DefaultHashCost)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(adminRepo, userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, catalogCache, log)
	orderService := service.NewOrderService(orderRepo, log)
	seedService := service.NewSeedService(adminRepo, productRepo, hasher, cfg.AdminEmail, cfg.AdminPassword, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	seedHandler := handler.NewSeedHandler(seedService)

	userAuth := middleware.User(tokens, userRepo)
	adminAuth := middleware.Admin(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)

	// --- Profile routes (customer token required) ---
	e.GET("/user/profile", userHandler.GetProfile, userAuth)
	e.PUT("/user/profile", userHandler.UpdateProfile, userAuth)

	// --- Catalog: browsing is public, management is admin-only ---
	e.GET("/products", productHandler.List)
	e.GET("/products/:id", productHandler.Get)
	e.POST("/products", productHandler.Create, adminAuth)
	e.PUT("/products/:id", productHandler.Update, adminAuth)
	e.DELETE("/products/:id", productHandler.Delete, adminAuth)

	// --- Orders: placement is public, management is admin-only ---
	e.POST("/orders", orderHandler.Create)
	e.GET("/orders", orderHandler.List, adminAuth)
	e.GET("/orders/:id", orderHandler.Get, adminAuth)
	e.PATCH("/orders/:id", orderHandler.UpdateStatus, adminAuth)

	// --- One-time bootstrap (remove after seeding production) ---
	e.POST("/seed", seedHandler.Seed)
	e.GET("/check-admin", seedHandler.CheckAdmin)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
