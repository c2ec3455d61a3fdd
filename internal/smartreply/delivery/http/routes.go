package http

import (
	"smart-reply-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/smart-replies")
	api.Use(mw.Auth())
	{
		api.POST("", h.GetSmartReplies)
	}
}
