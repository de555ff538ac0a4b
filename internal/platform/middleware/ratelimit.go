package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"phonebook_backend/internal/platform/problem"
)

// RateLimit returns a fixed-window rate limiter keyed by client IP and
// route, counting in Redis. With a nil client or a non-positive limit it is
// a no-op, so the service keeps working when Redis is down. Redis errors
// fail open: a broken limiter must not take the API with it.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", c.ClientIP(), c.FullPath())
		ctx := c.Request.Context()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				slog.Warn("rate limiter expire failed", "key", key, "error", err)
			}
		}

		if count > int64(limit) {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP(), "path", c.FullPath())
			problem.Abort(c, http.StatusTooManyRequests, "Too many requests",
				problem.Detail{Message: "rate limit exceeded, try again later"})
			return
		}

		c.Next()
	}
}
