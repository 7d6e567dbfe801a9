package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/petitmarche/shop-api/internal/api/handler"
	"github.com/petitmarche/shop-api/internal/api/middleware"
	"github.com/petitmarche/shop-api/internal/core/ports"
)

// Dependencies carries everything the router needs, constructed in main and
// passed down explicitly; nothing here reads the environment.
type Dependencies struct {
	AuthService     ports.AuthService
	CategoryService ports.CategoryService
	ProductService  ports.ProductService
	Tokens          ports.TokenService

	Mongo *mongo.Database
	Redis *redis.Client // may be nil, readiness then skips it

	BaseURL   string
	UploadDir string // non-empty: serve /uploads from local disk
	Logger    zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("shop"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	categoryHandler := handler.NewCategoryHandler(deps.CategoryService)
	productHandler := handler.NewProductHandler(deps.ProductService, deps.BaseURL)

	authenticated := middleware.Auth(deps.Tokens)
	adminOnly := middleware.AdminOnly()

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, authenticated)
	auth.GET("/admin", authHandler.Admin, authenticated, adminOnly)

	// --- Category routes: public reads, admin writes ---
	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.List)
	categories.GET("/:id", categoryHandler.Get)
	categories.POST("", categoryHandler.Create, authenticated, adminOnly)
	categories.PUT("/:id", categoryHandler.Update, authenticated, adminOnly)
	categories.DELETE("/:id", categoryHandler.Delete, authenticated, adminOnly)

	// --- Product routes: public reads, admin writes ---
	products := e.Group("/api/products")
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, authenticated, adminOnly)
	products.PUT("/:id", productHandler.Update, authenticated, adminOnly)
	products.DELETE("/:id", productHandler.Delete, authenticated, adminOnly)

	// --- Uploaded images (local storage driver only) ---
	if deps.UploadDir != "" {
		e.Static("/uploads", deps.UploadDir)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	checks := []handler.Check{handler.MongoCheck(deps.Mongo)}
	if deps.Redis != nil {
		checks = append(checks, handler.RedisCheck(deps.Redis))
	}
	readinessHandler := handler.NewReadinessHandler(checks...)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
