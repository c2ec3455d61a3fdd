package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "smart-reply-srv/internal/assistant/delivery/http"
	assistantUsecase "smart-reply-srv/internal/assistant/usecase"
)

func (srv HTTPServer) setupAssistantDomain(ctx context.Context, r *gin.RouterGroup) error {
	uc := assistantUsecase.New(srv.geminiClient, srv.l)

	handler := assistantHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
