package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/repository"
)

var (
	ErrUserServiceNotConfigured = errors.New("user service not configured")
	ErrUserInvalidInput         = errors.New("user invalid input")
)

// UserService registra usuarios observados en el transporte.
type UserService struct {
	logger *zap.Logger
	store  repository.HistoryStore
}

func NewUserService(logger *zap.Logger, store repository.HistoryStore) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{logger: logger, store: store}
}

type RegisterUserInput struct {
	UserID      string
	Username    string
	DisplayName string
}

// Register crea el usuario si no existe; si ya existe lo devuelve sin cambios.
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (domain.User, error) {
	if s == nil || s.store == nil {
		return domain.User{}, ErrUserServiceNotConfigured
	}
	id := strings.TrimSpace(input.UserID)
	if id == "" {
		return domain.User{}, ErrUserInvalidInput
	}

	user, err := s.store.RegisterUser(ctx, domain.User{
		ID:           id,
		Username:     strings.TrimSpace(input.Username),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		RegisteredAt: time.Now().UTC(),
	})
	if err != nil {
		s.logger.Warn("register user failed", zap.Error(err), zap.String("user_id", id))
		return domain.User{}, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (domain.User, error) {
	if s == nil || s.store == nil {
		return domain.User{}, ErrUserServiceNotConfigured
	}
	return s.store.GetUser(ctx, strings.TrimSpace(userID))
}
