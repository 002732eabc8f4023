package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glowmate/api/pkg/apperr"
	"github.com/glowmate/api/pkg/constant"
	"github.com/redis/go-redis/v9"
)

// RateLimit is a fixed-window per-IP limiter backed by redis. When redis
// is unavailable the request is allowed through; availability beats
// strictness for a public signup endpoint.
func RateLimit(rdb *redis.Client, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())

		count, err := rdb.Incr(c, key).Result()
		if err != nil {
			log.Printf("[warn] rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c, key, window)
		}

		if count > int64(limit) {
			c.JSON(429, gin.H{
				"code":    apperr.CodeRateLimited,
				"message": constant.RATE_LIMITED_MSG,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
