package handlers

import (
	"net/http"
	"strings"

	"otter-agent/assistant"
	"otter-agent/web/format"
	"otter-agent/web/middleware"
	"otter-agent/web/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WebhookHandler struct {
	assistant *assistant.Assistant
	logger    *zap.Logger
}

func NewWebhookHandler(assistant *assistant.Assistant, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		assistant: assistant,
		logger:    logger,
	}
}

// Health answers the root route so deploy platforms can probe the process.
func (h *WebhookHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, "Server is running")
}

// Ready answers GET /webhook, which dialogue platforms use as a reachability
// check before sending real traffic.
func (h *WebhookHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Webhook ready"})
}

// Answer handles POST /webhook: extract the question, run the assistant,
// reply with the answer in every shape a caller might want.
func (h *WebhookHandler) Answer(c *gin.Context) {
	logger := middleware.RequestLogger(c, h.logger)

	var req types.WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Rejected malformed webhook body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	question := strings.TrimSpace(req.Text())
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing question text"})
		return
	}

	logger.Info("Answering question", zap.String("question", question))
	reply := h.assistant.AnswerQuestion(c.Request.Context(), question)

	c.JSON(http.StatusOK, types.WebhookResponse{
		Reply:           reply,
		HTML:            format.RenderReplyHTML(reply),
		FulfillmentText: reply,
	})
}
