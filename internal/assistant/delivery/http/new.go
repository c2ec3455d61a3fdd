package http

import (
	"smart-reply-srv/internal/assistant"
	"smart-reply-srv/pkg/discord"
	"smart-reply-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - HTTP handler for the passthrough chat
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l       log.Logger
	uc      assistant.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc assistant.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
