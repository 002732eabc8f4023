package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/config"
)

func HealthRoutes(r *gin.Engine, appc config.App) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":    "ok",
			"message":   appc.Name + " API v1",
			"version":   appc.Version,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
