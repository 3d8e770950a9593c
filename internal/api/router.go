package api

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/omnibar/internal/config"
	"github.com/jonesrussell/omnibar/internal/handlers"
	"github.com/jonesrussell/omnibar/internal/logger"
	"github.com/jonesrussell/omnibar/internal/metrics"
)

const corsMaxAgeHours = 12

// NewRouter wires the HTTP surface: completion lookups, custom domain
// management and the source toggles, plus health and metrics.
func NewRouter(
	cfg *config.Config,
	complete *handlers.CompleteHandler,
	domains *handlers.DomainHandler,
	toggles *handlers.ToggleHandler,
	log logger.Logger,
) *gin.Engine {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// CORS middleware - must be first
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept-Encoding",
			"Authorization", "accept", "origin", "Cache-Control", "X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           corsMaxAgeHours * time.Hour,
	}))

	router.Use(ginLogger(log))
	router.Use(metrics.Middleware())
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	v1 := router.Group("/api/v1")

	v1.GET("/complete", complete.Complete)

	domainRoutes := v1.Group("/domains")
	domainRoutes.GET("", domains.List)
	domainRoutes.POST("", domains.Create)
	domainRoutes.DELETE("/:index", domains.Delete)
	domainRoutes.POST("/import", domains.Import)

	toggleRoutes := v1.Group("/toggles")
	toggleRoutes.GET("/:name", toggles.Get)
	toggleRoutes.PUT("/:name", toggles.Set)

	return router
}

func ginLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		log.Info("HTTP request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status_code", statusCode),
			logger.String("client_ip", c.ClientIP()),
			logger.Duration("duration", duration),
		)
	}
}
