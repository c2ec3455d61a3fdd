package middleware

import (
	"context"
	"strings"

	"smart-reply-srv/pkg/response"
	"smart-reply-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth verifies the bearer token, rejects revoked token ids and stores the caller scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		// Support both "Bearer <token>" and plain token
		tokenString := strings.TrimSpace(c.GetHeader("Authorization"))
		if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "Bearer ") {
			tokenString = strings.TrimSpace(tokenString[7:])
		}
		if tokenString == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		payload, err := m.jwtManager.Verify(tokenString)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: Verify failed: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if m.isRevoked(ctx, payload.Id) {
			m.l.Infof(ctx, "middleware.Auth: revoked token jti=%s", payload.Id)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		// Set scope in context for downstream handlers
		ctx = scope.SetScopeToContext(ctx, scope.NewScope(payload))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// isRevoked fails open when Redis is unreachable so a cache outage does not lock everyone out.
func (m Middleware) isRevoked(ctx context.Context, jti string) bool {
	if m.redisClient == nil || jti == "" {
		return false
	}
	exists, err := m.redisClient.Exists(ctx, m.blacklistKeyPrefix+jti)
	if err != nil {
		m.l.Warnf(ctx, "middleware.Auth: blacklist lookup failed: %v", err)
		return false
	}
	return exists
}
