package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/render"
	"behavior-analytics/internal/service"
)

// ReportHandler expone los cuatro reportes por usuario.
type ReportHandler struct {
	logger     *zap.Logger
	reportServ *service.ReportService
}

func NewReportHandler(logger *zap.Logger, reportServ *service.ReportService) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{logger: logger, reportServ: reportServ}
}

// GetReport maneja GET /users/:id/reports/:kind. La respuesta incluye el
// reporte estructurado y su version en texto.
func (h *ReportHandler) GetReport(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("id")
	kind := domain.ReportKind(c.Param("kind"))

	var (
		report any
		text   string
		err    error
	)
	switch kind {
	case domain.ReportMood:
		var r domain.MoodReport
		if r, err = h.reportServ.Mood(ctx, userID); err == nil {
			report, text = r, render.Mood(r)
		}
	case domain.ReportPersonality:
		var r domain.PersonalityReport
		if r, err = h.reportServ.Personality(ctx, userID); err == nil {
			report, text = r, render.Personality(r)
		}
	case domain.ReportComprehensive:
		var r domain.ComprehensiveReport
		if r, err = h.reportServ.Comprehensive(ctx, userID); err == nil {
			report, text = r, render.Comprehensive(r)
		}
	case domain.ReportStats:
		var r domain.StatsReport
		if r, err = h.reportServ.Stats(ctx, userID); err == nil {
			report, text = r, render.Stats(r)
		}
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown report"})
		return
	}
	if err != nil {
		writeServiceError(c, h.logger, "build "+string(kind)+" report", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "kind": kind, "report": report, "text": text})
}
