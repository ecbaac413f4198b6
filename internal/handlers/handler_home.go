package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerHomeRoutes registers the health endpoints.
func registerHomeRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
}
