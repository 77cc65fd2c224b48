package handler

import (
	"donation-gateway/internal/adapter/http/middleware"
	redisStore "donation-gateway/internal/adapter/storage/redis"
	"donation-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	MethodSvc      ports.MethodService
	IntentSvc      ports.IntentService
	WebhookSvc     ports.WebhookService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	IdentitySecret string // "" = all donors anonymous
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// Donor identity is optional everywhere; anonymous requests pass.
	identity := middleware.Identity(deps.IdentitySecret, deps.Logger)

	paymentHandler := NewPaymentHandler(deps.MethodSvc, deps.IntentSvc, deps.WebhookSvc)
	payments := v1.Group("/payments")
	{
		payments.GET("/methods", rl("payments_methods"), paymentHandler.Methods)
		payments.POST("/create-intent", identity, rl("payments_intent"), paymentHandler.CreateIntent)
		payments.POST("/webhooks/:provider", rl("payments_webhook"), paymentHandler.Webhook)
		payments.POST("/bank/submit-proof", identity, rl("payments_proof"), paymentHandler.SubmitProof)
	}

	return r
}
