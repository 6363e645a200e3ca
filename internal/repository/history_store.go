package repository

import (
	"context"
	"time"

	"behavior-analytics/internal/domain"
)

// HistoryStore es el log de mensajes por usuario junto con su contador.
// AppendMessage inserta el registro e incrementa el contador en una sola
// operacion atomica y serializada por usuario; las lecturas pueden ser concurrentes.
type HistoryStore interface {
	RegisterUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUser(ctx context.Context, userID string) (domain.User, error)
	AppendMessage(ctx context.Context, record domain.MessageRecord) (int, error)
	RecentMessages(ctx context.Context, userID string, limit int) ([]domain.MessageRecord, error)
	AllMessages(ctx context.Context, userID string) ([]domain.MessageRecord, error)
	MessagesSince(ctx context.Context, userID string, since time.Time) ([]domain.MessageRecord, error)
	UserSummary(ctx context.Context, userID string) (domain.UserSummary, error)
}
