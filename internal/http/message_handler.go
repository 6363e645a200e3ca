package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/render"
	"behavior-analytics/internal/service"
)

// MessageHandler recibe mensajes observados y los pasa por la ingesta.
type MessageHandler struct {
	logger     *zap.Logger
	ingestServ *service.IngestService
}

func NewMessageHandler(logger *zap.Logger, ingestServ *service.IngestService) *MessageHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageHandler{logger: logger, ingestServ: ingestServ}
}

type messageResponse struct {
	Message   domain.MessageRecord `json:"message"`
	Sentiment domain.Sentiment     `json:"sentiment"`
	Stress    domain.Stress        `json:"stress"`
	Total     int                  `json:"total_messages"`
	Feedback  *feedbackResponse    `json:"feedback,omitempty"`
}

type feedbackResponse struct {
	domain.Feedback
	Text string `json:"text"`
}

// PostMessage maneja POST /messages.
func (h *MessageHandler) PostMessage(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id" binding:"required"`
		Username    string `json:"username"`
		DisplayName string `json:"display_name"`
		Text        string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid post message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	res, err := h.ingestServ.Ingest(c.Request.Context(), service.IngestInput{
		UserID:      req.UserID,
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Text:        req.Text,
	})
	if err != nil {
		writeServiceError(c, h.logger, "ingest message", err)
		return
	}

	resp := messageResponse{
		Message:   res.Record,
		Sentiment: res.Sentiment,
		Stress:    res.Stress,
		Total:     res.Total,
	}
	if res.Feedback != nil {
		resp.Feedback = &feedbackResponse{Feedback: *res.Feedback, Text: render.Feedback(*res.Feedback)}
	}
	c.JSON(http.StatusCreated, resp)
}
