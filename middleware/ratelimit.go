package middleware

import (
	stdctx "context"
	"net/http"
	"time"

	"Scribe/pkg/context"
	"Scribe/pkg/log"
	"Scribe/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Limiter interface {
	Allow(ctx stdctx.Context, uid int64, action string, limit int, window time.Duration) (bool, error)
}

// RateLimit must run after Auth. Limiter errors let the request through.
func RateLimit(l Limiter, action string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}
		uid, err := context.GetUserID(c)
		if err != nil {
			response.Abort(c, http.StatusForbidden, "Authorization header missing or invalid")
			return
		}

		allowed, err := l.Allow(c.Request.Context(), uid, action, limit, window)
		if err != nil {
			log.L.Warn("rate limit unavailable", zap.String("action", action), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			response.Abort(c, http.StatusTooManyRequests, "Too many requests, please slow down.")
			return
		}

		c.Next()
	}
}
