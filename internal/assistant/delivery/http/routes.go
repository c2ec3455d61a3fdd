package http

import "github.com/gin-gonic/gin"

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/ai")
	{
		api.POST("/chat", h.Chat)
	}
}
