package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	userH *UserHandler,
	messageH *MessageHandler,
	reportH *ReportHandler,
) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	r.GET("/health", health)

	users := r.Group("/users")
	users.POST("", userH.CreateUser)
	users.GET("/:id", userH.GetUser)
	users.GET("/:id/reports/:kind", reportH.GetReport)

	r.POST("/messages", messageH.PostMessage)

	return r
}

func health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
