package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruit-backend/internal/applications"
	"recruit-backend/internal/companies"
	"recruit-backend/internal/jobpostings"
	"recruit-backend/internal/review"
	"recruit-backend/internal/services/health"
	"recruit-backend/internal/shared/config"
	"recruit-backend/internal/shared/metrics"
	"recruit-backend/internal/shared/server/middleware"
	"recruit-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers mounted by NewRouter. The contract
// handlers are nil when the service runs against a remote recruiting API.
type RouterDeps struct {
	Config             config.Config
	Health             *health.Service
	ReviewHandler      *review.Handler
	CompanyHandler     *companies.Handler
	JobPostingHandler  *jobpostings.Handler
	ApplicationHandler *applications.Handler
	RateLimiter        *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	cfg := deps.Config
	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	limited := r.Group("")
	if cfg.RateLimitRPS > 0 {
		limited.Use(middleware.RateLimit(middleware.RateLimitConfig{
			Rules:   middleware.ReadWriteRules(cfg.RateLimitRPS, cfg.RateLimitBurst),
			Limiter: deps.RateLimiter,
		}))
	}

	api := limited.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		payload := gin.H{"ok": true}
		if deps.Health != nil {
			for k, v := range deps.Health.Status(c.Request.Context()) {
				payload[k] = v
			}
		}
		status := http.StatusOK
		if ok, _ := payload["ok"].(bool); !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, payload)
	})
	if deps.ReviewHandler != nil {
		deps.ReviewHandler.RegisterRoutes(api)
	}

	// The recruiting contract is served at its literal paths.
	if deps.CompanyHandler != nil {
		deps.CompanyHandler.RegisterRoutes(limited)
	}
	if deps.JobPostingHandler != nil {
		deps.JobPostingHandler.RegisterRoutes(limited)
	}
	if deps.ApplicationHandler != nil {
		deps.ApplicationHandler.RegisterRoutes(limited)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
