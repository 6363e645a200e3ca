package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/render"
	"behavior-analytics/internal/service"
)

// writeServiceError traduce los errores de servicio a codigos HTTP. Datos
// insuficientes no es un fallo: responde 200 con un estado explicito.
func writeServiceError(c *gin.Context, logger *zap.Logger, op string, err error) {
	var ide *domain.InsufficientDataError
	switch {
	case errors.As(err, &ide):
		msg, _ := render.InsufficientData(err)
		c.JSON(http.StatusOK, gin.H{
			"status":    "insufficient_data",
			"report":    ide.Report,
			"required":  ide.Required,
			"available": ide.Available,
			"message":   msg,
		})
	case errors.Is(err, service.ErrIngestInvalidInput),
		errors.Is(err, service.ErrUserInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, service.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable"})
	default:
		logger.Error(op+" failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not " + op})
	}
}
