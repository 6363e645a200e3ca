package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"behavior-analytics/internal/analysis"
	"behavior-analytics/internal/domain"
	"behavior-analytics/internal/repository"
)

var ErrReportNotConfigured = errors.New("report service not configured")

// ReportService lee ventanas del historial y arma los cuatro reportes. Es de
// solo lectura y puede correr en paralelo con la ingesta.
type ReportService struct {
	logger   *zap.Logger
	store    repository.HistoryStore
	scorer   *analysis.SentimentScorer
	traits   *TraitService
	location *time.Location
	now      func() time.Time
}

func NewReportService(
	logger *zap.Logger,
	store repository.HistoryStore,
	scorer *analysis.SentimentScorer,
	traits *TraitService,
	location *time.Location,
) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if scorer == nil {
		scorer = analysis.NewSentimentScorer(nil)
	}
	if traits == nil {
		traits = NewTraitService(logger, store, nil)
	}
	if location == nil {
		location = time.Local
	}
	return &ReportService{
		logger:   logger,
		store:    store,
		scorer:   scorer,
		traits:   traits,
		location: location,
		now:      time.Now,
	}
}

func (s *ReportService) Mood(ctx context.Context, userID string) (domain.MoodReport, error) {
	if err := s.ready(); err != nil {
		return domain.MoodReport{}, err
	}
	window, err := s.store.RecentMessages(ctx, strings.TrimSpace(userID), analysis.MoodWindow)
	if err != nil {
		return domain.MoodReport{}, fmt.Errorf("mood window: %w", err)
	}
	return analysis.BuildMoodReport(window, s.scorer)
}

func (s *ReportService) Personality(ctx context.Context, userID string) (domain.PersonalityReport, error) {
	if err := s.ready(); err != nil {
		return domain.PersonalityReport{}, err
	}
	scores, err := s.traits.Scores(ctx, strings.TrimSpace(userID))
	if err != nil {
		return domain.PersonalityReport{}, err
	}
	return analysis.BuildPersonalityReport(scores)
}

func (s *ReportService) Comprehensive(ctx context.Context, userID string) (domain.ComprehensiveReport, error) {
	if err := s.ready(); err != nil {
		return domain.ComprehensiveReport{}, err
	}
	userID = strings.TrimSpace(userID)

	summary, err := s.store.UserSummary(ctx, userID)
	if err != nil {
		return domain.ComprehensiveReport{}, fmt.Errorf("user summary: %w", err)
	}
	in := analysis.ComprehensiveInput{Summary: summary, Location: s.location}
	if summary.TotalCount < analysis.ComprehensiveMinimum {
		return analysis.BuildComprehensiveReport(in)
	}
	if in.Week, err = s.store.MessagesSince(ctx, userID, s.now().Add(-analysis.WeeklyDays*24*time.Hour)); err != nil {
		return domain.ComprehensiveReport{}, fmt.Errorf("weekly messages: %w", err)
	}
	if in.All, err = s.store.AllMessages(ctx, userID); err != nil {
		return domain.ComprehensiveReport{}, fmt.Errorf("all messages: %w", err)
	}
	if in.Traits, err = s.traits.Scores(ctx, userID); err != nil {
		return domain.ComprehensiveReport{}, err
	}
	return analysis.BuildComprehensiveReport(in)
}

func (s *ReportService) Stats(ctx context.Context, userID string) (domain.StatsReport, error) {
	if err := s.ready(); err != nil {
		return domain.StatsReport{}, err
	}
	summary, err := s.store.UserSummary(ctx, strings.TrimSpace(userID))
	if err != nil {
		return domain.StatsReport{}, fmt.Errorf("user summary: %w", err)
	}
	return analysis.BuildStatsReport(summary, s.now(), s.location)
}

func (s *ReportService) ready() error {
	if s == nil || s.store == nil {
		return ErrReportNotConfigured
	}
	return nil
}
