package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"behavior-analytics/internal/service"
)

// UserHandler mantiene dependencias para endpoints de usuarios.
type UserHandler struct {
	logger   *zap.Logger
	userServ *service.UserService
}

// NewUserHandler crea una instancia de UserHandler con dependencias necesarias.
func NewUserHandler(logger *zap.Logger, userServ *service.UserService) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{logger: logger, userServ: userServ}
}

// CreateUser maneja POST /users. Registrar un usuario existente lo devuelve sin cambios.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		UserID      string `json:"user_id" binding:"required"`
		Username    string `json:"username"`
		DisplayName string `json:"display_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create user request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.userServ.Register(c.Request.Context(), service.RegisterUserInput{
		UserID:      req.UserID,
		Username:    req.Username,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		writeServiceError(c, h.logger, "create user", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// GetUser maneja GET /users/:id.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userServ.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, h.logger, "get user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
