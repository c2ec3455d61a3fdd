package middleware

import (
	"io"
	"runtime/debug"

	"smart-reply-srv/pkg/discord"
	"smart-reply-srv/pkg/log"
	"smart-reply-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 with the generic error body. The panic and its
// stack go to logger, and a summary goes to discordClient when one is configured.
// Broken client connections are aborted without a body or report.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Errorf(c.Request.Context(), "middleware.Recovery: %s %s: %v\n%s",
			c.Request.Method, c.FullPath(), recovered, debug.Stack())
		response.PanicError(c, recovered, discordClient)
		c.Abort()
	})
}
