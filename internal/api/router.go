package api

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the HTTP surface. healthy reflects the background storage
// health check; nil means no monitor is running and the endpoint always
// reports available.
func NewRouter(service SentimentService, healthy *atomic.Bool) http.Handler {
	r := gin.Default()

	r.Use(corsMiddleware())

	sentimentRoutes := r.Group("/api/sentiment")
	sentimentRoutes.POST("/analyze", analyzeText(service))
	sentimentRoutes.POST("/analyze/batch", analyzeBatch(service))
	sentimentRoutes.GET("/history", history(service))
	sentimentRoutes.GET("/history/:id", historyByID(service))

	r.GET("/health", healthCheck(healthy))

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func healthCheck(healthy *atomic.Bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		state := "available"
		if healthy != nil && !healthy.Load() {
			status = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(status, gin.H{
			"status": state,
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
