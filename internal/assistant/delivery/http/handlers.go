package http

import (
	"smart-reply-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Chat with the model
// @Description Forward a prompt to the model and return its raw reply
// @Tags Assistant
// @Accept json
// @Produce json
// @Param body body chatReq true "Chat request"
// @Success 200 {object} chatResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /ai/chat [post]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processChatRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "assistant.delivery.http.Chat: processChatRequest failed: %v", err)
		response.Error(c, errPromptRequired, h.discord)
		return
	}

	o, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "assistant.delivery.http.Chat: usecase Chat failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChatResp(o))
}
