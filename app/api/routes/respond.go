package routes

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
)

// respondError maps tagged errors to their status/code envelope and
// everything else to a logged 500 that leaks nothing.
func respondError(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		c.JSON(ae.Status, ae)
		return
	}

	log.Printf("[error] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	internal := apperr.Internal()
	c.JSON(internal.Status, internal)
}
