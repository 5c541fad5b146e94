package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"norte/internal/infrastructure/ratelimit"
	"norte/internal/shared/logger"
	"norte/internal/shared/utils"
)

// LoginRateLimiter throttles credential endpoints per client IP. When redis
// is unreachable the request is allowed through rather than locking
// everyone out.
type LoginRateLimiter struct {
	limiter ratelimit.RateLimiter
	limits  []ratelimit.Limit
	logger  logger.Interface
}

func NewLoginRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface, limits ...ratelimit.Limit) *LoginRateLimiter {
	return &LoginRateLimiter{
		limiter: limiter,
		limits:  limits,
		logger:  logger,
	}
}

func (rl *LoginRateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limiter == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("login:%s", c.ClientIP())

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.limits...)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
