package http

import (
	"smart-reply-srv/internal/middleware"
	"smart-reply-srv/internal/smartreply"
	"smart-reply-srv/pkg/discord"
	"smart-reply-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - HTTP handler for smart replies
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      smartreply.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc smartreply.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
