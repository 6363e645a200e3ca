package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"behavior-analytics/internal/analysis"
	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/repository"
)

// TraitService puntua rasgos sobre los ultimos analysis.TraitWindow mensajes.
// La cache es opcional; ante cualquier fallo se recalcula desde el historial.
type TraitService struct {
	logger *zap.Logger
	store  repository.HistoryStore
	cache  TraitCache
}

func NewTraitService(logger *zap.Logger, store repository.HistoryStore, cache TraitCache) *TraitService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TraitService{logger: logger, store: store, cache: cache}
}

// Scores devuelve los puntajes del usuario. Sin historial todos son cero, y el
// llamador debe tratarlo como datos insuficientes.
func (s *TraitService) Scores(ctx context.Context, userID string) (domain.TraitScores, error) {
	user, err := s.store.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return analysis.ScoreTraits(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", userID, err)
	}

	if s.cache != nil {
		if scores, ok := s.cache.Get(ctx, userID, user.TotalMessages); ok {
			return scores, nil
		}
	}

	window, err := s.store.RecentMessages(ctx, userID, analysis.TraitWindow)
	if err != nil {
		return nil, fmt.Errorf("trait window: %w", err)
	}
	texts := make([]string, len(window))
	for i, rec := range window {
		texts[i] = rec.Text
	}
	scores := analysis.ScoreTraits(texts)

	if s.cache != nil {
		s.cache.Set(ctx, userID, user.TotalMessages, scores)
	}
	s.logger.Debug("traits scored", zap.String("user_id", userID), zap.Int("window", len(window)))
	return scores, nil
}
