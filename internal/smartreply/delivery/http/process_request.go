package http

import (
	"smart-reply-srv/internal/model"
	"smart-reply-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetSmartRepliesRequest(c *gin.Context) (smartRepliesReq, model.Scope, error) {
	var req smartRepliesReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}
	if err := req.validate(); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
