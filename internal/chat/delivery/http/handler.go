package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-chat-service/internal/chat"
	pkgResponse "ai-chat-service/pkg/response"
)

// HandleChat is the Gin handler for one conversation turn.
// @Summary     Chat
// @Description Send one user message and receive the assistant's reply. Pass session_id to continue an existing conversation; omit it to start a new one.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       request body ChatRequest true "User message and optional session id"
// @Success     200 {object} ChatResponse
// @Failure     400 {object} response.ErrResp "Missing or empty message"
// @Failure     500 {object} response.ErrResp "Unexpected failure"
// @Router      /chat [post]
func (h *handler) HandleChat(c *gin.Context) {
	ctx := c.Request.Context()

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat handler: failed to parse request: %v", err)
		pkgResponse.BadRequest(c, err)
		return
	}

	out, err := h.uc.HandleTurn(ctx, chat.TurnInput{
		Message:   req.Message,
		SessionID: req.SessionID,
	})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			pkgResponse.BadRequest(c, err)
			return
		}
		h.l.Errorf(ctx, "chat handler: unexpected failure: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, ChatResponse{
		Response:  out.Reply,
		SessionID: out.SessionID,
		Timestamp: out.Timestamp,
	})
}
