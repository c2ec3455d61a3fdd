package http

import (
	"smart-reply-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get smart replies
// @Description Return exactly three short reply suggestions for the latest chat message
// @Tags SmartReply
// @Accept json
// @Produce json
// @Security Bearer
// @Param body body smartRepliesReq true "Smart replies request"
// @Success 200 {object} smartRepliesResp
// @Failure 400 {object} response.Resp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /smart-replies [post]
func (h *handler) GetSmartReplies(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetSmartRepliesRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "smartreply.delivery.http.GetSmartReplies: processGetSmartRepliesRequest failed: %v", err)
		response.Error(c, errMessageRequired, h.discord)
		return
	}

	o, err := h.uc.GetSmartReplies(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "smartreply.delivery.http.GetSmartReplies: usecase GetSmartReplies failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newSmartRepliesResp(o))
}
