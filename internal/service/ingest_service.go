package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"behavior-analytics/internal/analysis"
	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/repository"
)

var (
	ErrIngestNotConfigured = errors.New("ingest service not configured")
	ErrIngestInvalidInput  = errors.New("ingest invalid input")
	ErrRateLimited         = errors.New("rate limited")
)

// DefaultFeedbackEvery es la frecuencia del feedback espontaneo.
const DefaultFeedbackEvery = 10

// IngestService puntua cada mensaje entrante, lo agrega al historial y decide
// si corresponde emitir feedback.
type IngestService struct {
	logger        *zap.Logger
	store         repository.HistoryStore
	users         *UserService
	scorer        *analysis.SentimentScorer
	limiter       IngestRateLimiter
	feedbackEvery int
}

func NewIngestService(
	logger *zap.Logger,
	store repository.HistoryStore,
	scorer *analysis.SentimentScorer,
	limiter IngestRateLimiter,
	feedbackEvery int,
) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scorer == nil {
		scorer = analysis.NewSentimentScorer(nil)
	}
	if feedbackEvery <= 0 {
		feedbackEvery = DefaultFeedbackEvery
	}
	return &IngestService{
		logger:        logger,
		store:         store,
		users:         NewUserService(logger, store),
		scorer:        scorer,
		limiter:       limiter,
		feedbackEvery: feedbackEvery,
	}
}

type IngestInput struct {
	UserID      string
	Username    string
	DisplayName string
	Text        string
	SentAt      time.Time
}

// IngestResult incluye Feedback solo cuando el contador es multiplo de la frecuencia.
type IngestResult struct {
	Record    domain.MessageRecord
	Sentiment domain.Sentiment
	Stress    domain.Stress
	Total     int
	Feedback  *domain.Feedback
}

func (s *IngestService) Ingest(ctx context.Context, input IngestInput) (IngestResult, error) {
	if s == nil || s.store == nil {
		return IngestResult{}, ErrIngestNotConfigured
	}
	userID := strings.TrimSpace(input.UserID)
	text := strings.TrimSpace(input.Text)
	if userID == "" || text == "" {
		return IngestResult{}, ErrIngestInvalidInput
	}
	if s.limiter != nil && !s.limiter.Allow(userID) {
		return IngestResult{}, ErrRateLimited
	}

	if _, err := s.users.Register(ctx, RegisterUserInput{
		UserID:      userID,
		Username:    input.Username,
		DisplayName: input.DisplayName,
	}); err != nil {
		return IngestResult{}, fmt.Errorf("register user: %w", err)
	}

	sentiment := s.scorer.Analyze(text)
	stress := analysis.DetectStress(text)

	sentAt := input.SentAt
	if sentAt.IsZero() {
		sentAt = time.Now()
	}
	record := domain.MessageRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Text:      text,
		CreatedAt: sentAt.UTC(),
		Polarity:  sentiment.Polarity,
		WordCount: analysis.WordCount(text),
	}

	total, err := s.store.AppendMessage(ctx, record)
	if err != nil {
		s.logger.Error("append message failed", zap.Error(err), zap.String("user_id", userID))
		return IngestResult{}, fmt.Errorf("append message: %w", err)
	}

	result := IngestResult{
		Record:    record,
		Sentiment: sentiment,
		Stress:    stress,
		Total:     total,
	}
	if analysis.ShouldSendFeedback(total, s.feedbackEvery) {
		fb := analysis.BuildFeedback(total, sentiment, stress)
		result.Feedback = &fb
		s.logger.Info("feedback triggered", zap.String("user_id", userID), zap.Int("total", total))
	}
	return result, nil
}
