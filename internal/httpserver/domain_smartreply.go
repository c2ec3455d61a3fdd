package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"smart-reply-srv/internal/middleware"
	smartreplyHTTP "smart-reply-srv/internal/smartreply/delivery/http"
	smartreplyUsecase "smart-reply-srv/internal/smartreply/usecase"
)

func (srv HTTPServer) setupSmartReplyDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	uc := smartreplyUsecase.New(srv.geminiClient, srv.l)

	handler := smartreplyHTTP.New(srv.l, uc, srv.discord)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "SmartReply domain registered")
	return nil
}
