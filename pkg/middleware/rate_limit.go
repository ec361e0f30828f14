package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"globetrotter/pkg/utils"
)

const (
	rateLimitKeyPrefix = "ratelimit:"
	rateLimitWindow    = time.Second
)

// rateLimitScript increments the window counter and gives it an expiry in
// one step. A counter found without a TTL is stale and restarts at 1.
var rateLimitScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
	if n > 1 then
		redis.call("SET", KEYS[1], 1)
		n = 1
	end
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// RateLimitMiddleware allows limitPerSec requests per client IP per second,
// counted in Redis so the limit holds across instances.
func RateLimitMiddleware(rdb *redis.Client, limitPerSec int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKeyPrefix + c.ClientIP()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := rateLimitScript.Run(ctx, rdb, []string{key}, rateLimitWindow.Milliseconds()).Int64()
		if err != nil {
			zap.L().Warn("rate limit check failed", zap.Error(err))
			utils.AbortWithError(c, http.StatusServiceUnavailable, "Service unavailable")
			return
		}

		if count > int64(limitPerSec) {
			c.Header("Retry-After", "1")
			utils.AbortWithError(c, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limitPerSec))
		c.Next()
	}
}
