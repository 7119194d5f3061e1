// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns
// such as tracing, correlation IDs, logging/redaction, panic recovery,
// metrics, CORS, security headers, compression, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/mvrettas/go-celebrations-backend/internal/config"
	"github.com/mvrettas/go-celebrations-backend/internal/domain"
	"github.com/mvrettas/go-celebrations-backend/internal/http/handlers"
	"github.com/mvrettas/go-celebrations-backend/internal/http/middleware"
	"github.com/mvrettas/go-celebrations-backend/internal/notify"
	"github.com/mvrettas/go-celebrations-backend/internal/repo"
	"github.com/mvrettas/go-celebrations-backend/internal/services"
)

// contactRepoShim adapts the repository free functions to the
// services.ContactRepo interface expected by ContactService. This keeps
// services decoupled from the concrete repo package while reusing the
// existing functions.
type contactRepoShim struct{}

// CreateContact proxies repo.CreateContact.
func (contactRepoShim) CreateContact(ctx context.Context, db *gorm.DB, name, date, option, imageURI, phone string) (*domain.Contact, error) {
	return repo.CreateContact(ctx, db, name, date, option, imageURI, phone)
}

// ListContacts proxies repo.ListContacts.
func (contactRepoShim) ListContacts(ctx context.Context, db *gorm.DB) ([]domain.Contact, error) {
	return repo.ListContacts(ctx, db)
}

// CountContacts proxies repo.CountContacts.
func (contactRepoShim) CountContacts(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountContacts(ctx, db)
}

// ListContactsPage proxies repo.ListContactsPage.
func (contactRepoShim) ListContactsPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.Contact, error) {
	return repo.ListContactsPage(ctx, db, offset, limit)
}

// GetContact proxies repo.GetContact.
func (contactRepoShim) GetContact(ctx context.Context, db *gorm.DB, id uint) (*domain.Contact, error) {
	return repo.GetContact(ctx, db, id)
}

// UpdateContact proxies repo.UpdateContact.
func (contactRepoShim) UpdateContact(ctx context.Context, db *gorm.DB, id uint, name, date, option, imageURI, phone string) error {
	return repo.UpdateContact(ctx, db, id, name, date, option, imageURI, phone)
}

// DeleteContact proxies repo.DeleteContact.
func (contactRepoShim) DeleteContact(ctx context.Context, db *gorm.DB, id uint) error {
	return repo.DeleteContact(ctx, db, id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given
// Gin engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. RedactingLogger: structured logs with PII scrubbing
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. CORS, gzip, security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, notifier notify.Notifier, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging with redaction (contact names/phones are PII)
	r.Use(middleware.RedactingLogger(middleware.RedactOptions{}))

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length", "ETag"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Compression for list-heavy endpoints.
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (serves the handler annotations; off by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db/notifier
	contactSvc := services.NewContactService(db, contactRepoShim{})
	contactSvc.WindowDays = cfg.WindowDays

	greetingSvc := &services.GreetingService{DB: db}
	reminderSvc := &services.ReminderService{
		DB:       db,
		Contacts: contactSvc,
		Notifier: notifier,
		Slots:    cfg.ReminderSlots,
		Log:      log.Logger,
	}
	h := handlers.New(contactSvc, greetingSvc, reminderSvc)

	// Public API
	apiBase := cfg.APIBasePath // e.g. "/api/v1"
	api := groupWithPrefix(r, apiBase)
	{
		// Contacts
		api.POST("/contacts", h.CreateContact)
		api.GET("/contacts", h.ListContacts)
		api.GET("/contacts/:id", h.GetContact)
		api.PUT("/contacts/:id", h.UpdateContact)
		api.DELETE("/contacts/:id", h.DeleteContact)

		// Celebrations
		api.GET("/celebrations", h.ListCelebrations)
		api.GET("/celebrations/:id/message", h.GenerateMessage)
		api.POST("/celebrations/reminders", h.ScheduleReminders)
	}
}

// limitBody returns a Gin middleware that caps the request body size for
// all endpoints using http.MaxBytesReader.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
