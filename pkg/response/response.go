package response

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"

	"smart-reply-srv/pkg/discord"
	"smart-reply-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes data as the JSON body with status 200.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error writes err as a JSON error body. HTTPErrors keep their status and message,
// anything else becomes an opaque 500. 5xx responses are reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if !stderrors.As(err, &httpErr) {
		httpErr = errors.NewHTTPError(http.StatusInternalServerError, MessageInternalError)
	}

	if httpErr.StatusCode >= http.StatusInternalServerError {
		report(c.Request.Context(), c, err, d)
	}

	c.JSON(httpErr.StatusCode, Resp{Error: httpErr.Message})
}

// Unauthorized writes a 401.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{Error: MessageUnauthorized})
}

// PanicError writes a 500 for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	report(c.Request.Context(), c, fmt.Errorf("panic: %v", recovered), d)
	c.JSON(http.StatusInternalServerError, Resp{Error: MessageInternalError})
}

// report sends err to Discord without holding up the response.
func report(ctx context.Context, c *gin.Context, err error, d discord.IDiscord) {
	if d == nil {
		return
	}
	title := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	go func() {
		_ = d.SendError(context.WithoutCancel(ctx), title, "request failed", err)
	}()
}
