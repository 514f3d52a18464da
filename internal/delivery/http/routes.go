package http

import (
	"github.com/gin-gonic/gin"

	"github.com/cardlens/backend/config"
	"github.com/cardlens/backend/internal/infrastructure/metrics"
)

// SetupRouter creates and configures the Gin router. m may be nil, which
// disables request metrics and the /metrics route.
func SetupRouter(cfg *config.Config, handler *Handler, m *metrics.Metrics) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(handler.logger))
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(handler.logger))
	if m != nil {
		router.Use(MetricsMiddleware(m))
	}
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)
	if m != nil {
		router.GET("/metrics", gin.WrapH(m.Handler()))
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		cards := v1.Group("/cards")
		{
			cards.GET("", handler.ListCards)
			cards.GET("/:id", handler.GetCard)
		}
		v1.GET("/categories", handler.ListCategories)
		v1.POST("/benefits/summary", handler.SummarizeBenefit)
	}

	return router
}
