package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/api/handler"
	"github.com/shopzone/storefront-gateway/internal/api/middleware"
	"github.com/shopzone/storefront-gateway/internal/core/service"
	"github.com/shopzone/storefront-gateway/internal/infrastructure/config"
	redisdb "github.com/shopzone/storefront-gateway/internal/infrastructure/db/redis"
	"github.com/shopzone/storefront-gateway/internal/infrastructure/upstream"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	store := redisdb.NewSessionStore(rdb, cfg.Session.TTL)
	cache := redisdb.NewCategoryCache(rdb, log)

	apiClient := upstream.NewClient(cfg.Upstream.CatalogURL, cfg.Upstream.Timeout, log)
	authClient := upstream.NewAuthClient(apiClient)
	catalogClient := upstream.NewCatalogClient(apiClient)
	uploader := upstream.NewUploadClient(cfg.Upstream.UploadURL, cfg.Upstream.Timeout, log)

	authService := service.NewAuthService(authClient, store, log)
	catalogService := service.NewCatalogService(catalogClient, authService, cache, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Session.Cookie, cfg.Session.TTL)
	dashboardHandler := handler.NewDashboardHandler(authService)
	productHandler := handler.NewProductHandler(catalogService)
	uploadHandler := handler.NewUploadHandler(uploader)

	guard := middleware.SessionGuard(store, cfg.Session.Cookie)
	adminGate := middleware.AdminGate(authService, log)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Protected views ---
	e.GET("/dashboard", dashboardHandler.Get, guard)
	e.GET("/products", productHandler.List, guard)
	e.GET("/products/add", productHandler.AddForm, guard, adminGate)
	e.GET("/products/detail/:id", productHandler.Detail, guard)
	e.GET("/products/edit/:id", productHandler.EditForm, guard, adminGate)
	e.POST("/products", productHandler.Create, guard, adminGate)
	e.PUT("/products/:id", productHandler.Update, guard, adminGate)
	e.DELETE("/products/:id", productHandler.Delete, guard)
	e.GET("/categories", productHandler.Categories, guard)
	e.POST("/files/upload", uploadHandler.Upload, guard)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
