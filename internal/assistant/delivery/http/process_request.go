package http

import (
	"smart-reply-srv/internal/model"
	"smart-reply-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processChatRequest(c *gin.Context) (chatReq, model.Scope, error) {
	var req chatReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}

	// The route is public; the scope is empty unless an upstream middleware set one.
	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
