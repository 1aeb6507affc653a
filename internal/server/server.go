// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"dev404/internal/cache"
	"dev404/internal/config"
	"dev404/internal/database"
	"dev404/internal/middleware"
	"dev404/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	sectionRepo    repository.SectionRepository
	mediaRepo      repository.MediaRepository
	signupRepo     repository.SignupRepository
	contactRepo    repository.ContactRepository
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis (rate limit counters)
	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: fiberprometheus.New("dev404-api"),
		sectionRepo:    repository.NewSectionRepository(db),
		mediaRepo:      repository.NewMediaRepository(db),
		signupRepo:     repository.NewSignupRepository(db),
		contactRepo:    repository.NewContactRepository(db),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware runs before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on
	// error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:5174"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Blanket rate limit: fixed window per client IP across all API traffic.
	app.Use(limiter.New(limiter.Config{
		Max:        s.config.RateLimitMax,
		Expiration: time.Duration(s.config.RateLimitWindowMinutes) * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests from this IP, please try again later.",
			})
		},
	}))

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	// Health check
	app.Get("/health", s.HealthCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// The stricter policy guards the public form endpoints against abuse.
	strictWindow := time.Duration(s.config.StrictRateLimitWindowMinutes) * time.Minute
	strictMax := s.config.StrictRateLimitMax

	// Section routes. Create/update are admin operations but carry no auth
	// check; the deployment fronts them with a trusted network.
	sections := app.Group("/sections")
	sections.Get("/", s.GetSections)
	sections.Get("/:key", s.GetSection)
	sections.Post("/", s.CreateSection)
	sections.Put("/:key", s.UpdateSection)

	// Media routes
	media := app.Group("/media")
	media.Get("/", s.GetMedia)
	media.Get("/:id", s.GetMediaItem)
	media.Post("/", s.CreateMedia)
	media.Put("/:id", s.UpdateMedia)
	media.Delete("/:id", s.DeleteMedia)

	// Contact routes (list is admin-only, unprotected placeholder)
	contact := app.Group("/contact")
	contact.Post("/", middleware.RateLimit(
		s.redis, strictMax, strictWindow, "contact"), s.CreateContact)
	contact.Get("/", s.GetContacts)

	// Signup routes (list is admin-only, unprotected placeholder)
	signup := app.Group("/signup")
	signup.Post("/", middleware.RateLimit(
		s.redis, strictMax, strictWindow, "signup"), s.CreateSignup)
	signup.Get("/", s.GetSignups)

	// Unmatched routes
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}

// HealthCheck handles GET /health
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "Server is running",
		"timestamp": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	fiberCfg := fiber.Config{
		AppName:   "DEV 404 API",
		BodyLimit: 10 * 1024 * 1024, // 10MB limit
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Uncaught errors never leak internals.
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Internal server error",
			})
		},
	}
	if s.config.IsProduction() {
		// Behind a reverse proxy the client address for rate limiting comes
		// from the forwarded header.
		fiberCfg.ProxyHeader = fiber.HeaderXForwardedFor
	}

	app := fiber.New(fiberCfg)
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	// Close database connection
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			if cerr := sqlDB.Close(); cerr != nil {
				log.Printf("error closing sql DB: %v", cerr)
			}
		}
	}

	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
