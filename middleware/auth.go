package middleware

import (
	"net/http"
	"strings"

	"Scribe/pkg/context"
	"Scribe/pkg/jwt"
	"Scribe/pkg/log"
	"Scribe/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth rejects requests without a valid bearer token with 403 and stores
// the caller's id under context.CtxUserID.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Abort(c, http.StatusForbidden, "Authorization header missing or invalid")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			log.L.Debug("reject token", zap.Error(err))
			response.Abort(c, http.StatusForbidden, "Invalid or expired token")
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}
