package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/just-nibble/cycle-tracker/internal/http/handlers"
	"github.com/just-nibble/cycle-tracker/internal/http/middleware"
	"github.com/just-nibble/cycle-tracker/pkg/config"
)

const (
	serviceName = "cycle-tracker"

	webhookRateLimit  = 60
	webhookRateWindow = time.Minute
)

func NewRouter(cfg config.ServerConfig, h *handlers.Handlers, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(otelgin.Middleware(serviceName))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", gin.WrapH(httpSwagger.WrapHandler))

	v1 := r.Group("/api/v1")
	{
		v1.POST("/webhooks/github", middleware.RateLimit(limiter, webhookRateLimit, webhookRateWindow), h.Webhook.Github)

		generations := v1.Group("/generations")
		{
			generations.GET("", h.Generation.List)
			generations.POST("", h.Generation.Create)
			generations.POST("/:id/activate", h.Generation.Activate)
			generations.GET("/:id/members", h.Member.ListByGeneration)
			generations.POST("/:id/members", h.Member.Join)
		}

		members := v1.Group("/members")
		{
			members.GET("", h.Member.List)
			members.POST("", h.Member.Create)
		}

		cycles := v1.Group("/cycles")
		{
			cycles.GET("", h.Cycle.List)
			cycles.POST("", h.Cycle.Create)
			cycles.GET("/current/status", h.Cycle.CurrentStatus)
			cycles.GET("/:id/status", h.Cycle.Status)
			cycles.POST("/:id/status/notify", h.Cycle.NotifyStatus)
			cycles.POST("/:id/remind", h.Cycle.Remind)
			cycles.POST("/:id/sync", h.Sync.Sync)
		}

		v1.POST("/submissions", h.Submission.Create)
		v1.GET("/deadlines", h.Deadline.Upcoming)
	}

	return r
}
