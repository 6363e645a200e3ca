package analysis

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"behavior-analytics/internal/domain"
)

func window(polarities ...float64) []domain.MessageRecord {
	out := make([]domain.MessageRecord, len(polarities))
	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, p := range polarities {
		// indice 0 es el mas reciente
		out[i] = domain.MessageRecord{
			ID:        string(rune('a' + i)),
			Text:      "the table is brown",
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
			Polarity:  p,
			WordCount: 4,
		}
	}
	return out
}

func TestBuildMoodReport_InsufficientData(t *testing.T) {
	_, err := BuildMoodReport(nil, nil)
	var ide *domain.InsufficientDataError
	if !errors.As(err, &ide) || ide.Report != domain.ReportMood || ide.Required != 1 {
		t.Fatalf("expected mood insufficient data, got %v", err)
	}
}

func TestBuildMoodReport_ImprovingTrend(t *testing.T) {
	pols := make([]float64, 20)
	pols[0] = 0.4
	pols[19] = -0.5
	report, err := BuildMoodReport(window(pols...), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Trend != domain.TrendImproving {
		t.Fatalf("expected improving, got %s", report.Trend)
	}
	if report.WindowSize != 20 {
		t.Fatalf("expected window 20, got %d", report.WindowSize)
	}
	if report.Insights[0] != "Your mood seems balanced" {
		t.Fatalf("expected balanced guidance, got %v", report.Insights)
	}
}

func TestBuildMoodReport_TruncatesWindow(t *testing.T) {
	pols := make([]float64, 25)
	pols[24] = 1 // fuera de la ventana de 20
	pols[19] = -0.2
	report, err := BuildMoodReport(window(pols...), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.WindowSize != MoodWindow {
		t.Fatalf("expected window %d, got %d", MoodWindow, report.WindowSize)
	}
	if report.Trend != domain.TrendImproving {
		t.Fatalf("expected trend computed on 20 records, got %s", report.Trend)
	}
}

func TestBuildMoodReport_SingleMessageDeclining(t *testing.T) {
	report, err := BuildMoodReport(window(0.9), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Trend != domain.TrendDeclining {
		t.Fatalf("expected declining for single record, got %s", report.Trend)
	}
}

func TestBuildMoodReport_RecommendationsAndStress(t *testing.T) {
	w := window(-0.6, -0.5)
	w[0].Text = "deadline pressure, I'm exhausted and overwhelmed"
	report, err := BuildMoodReport(w, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Insights[0] != "Consider talking to someone you trust" {
		t.Fatalf("expected support guidance, got %v", report.Insights)
	}
	if report.CurrentStress.Level != 8 {
		t.Fatalf("expected stress level 8, got %d", report.CurrentStress.Level)
	}
	if last := report.Insights[len(report.Insights)-1]; !strings.HasPrefix(last, "High stress detected") {
		t.Fatalf("expected stress note, got %q", last)
	}

	positive, _ := BuildMoodReport(window(0.5, 0.6), nil)
	if positive.Insights[0] != "Great positive energy! Keep it up!" || len(positive.Insights) != 2 {
		t.Fatalf("expected positive guidance only, got %v", positive.Insights)
	}
}

func TestBuildPersonalityReport(t *testing.T) {
	if _, err := BuildPersonalityReport(domain.TraitScores{}); !errors.Is(err, domain.ErrInsufficientData) {
		t.Fatalf("expected insufficient data for all-zero scores, got %v", err)
	}

	scores := domain.TraitScores{
		domain.TraitExtraversion:      65,
		domain.TraitOpenness:          70,
		domain.TraitConscientiousness: 66,
		domain.TraitAgreeableness:     100,
		domain.TraitNeuroticism:       60,
	}
	report, err := BuildPersonalityReport(scores)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.Dominant != domain.TraitAgreeableness {
		t.Fatalf("expected agreeableness dominant, got %s", report.Dominant)
	}
	if len(report.Traits) != 5 || report.Traits[0].Trait != domain.TraitExtraversion || report.Traits[0].Filled != 6 {
		t.Fatalf("unexpected trait lines: %+v", report.Traits)
	}
	want := []string{
		"You seem socially engaged and outgoing",
		"You demonstrate good organization skills",
		"You show cooperative and helpful tendencies",
	}
	if !reflect.DeepEqual(report.Insights, want) {
		t.Fatalf("unexpected insights: %v", report.Insights)
	}
}

func TestBuildComprehensiveReport(t *testing.T) {
	in := ComprehensiveInput{Summary: domain.UserSummary{TotalCount: 4}}
	_, err := BuildComprehensiveReport(in)
	var ide *domain.InsufficientDataError
	if !errors.As(err, &ide) || ide.Required != 5 || ide.Available != 4 {
		t.Fatalf("expected comprehensive insufficient data, got %v", err)
	}

	all := window(0.5, 0.4, 0.3, 0.3, 0.2)
	in = ComprehensiveInput{
		Summary:  domain.UserSummary{TotalCount: 5, MeanPolarity: 0.34, MeanWordCount: 4},
		Week:     all[:3],
		All:      all,
		Traits:   domain.TraitScores{domain.TraitOpenness: 55, domain.TraitNeuroticism: 50},
		Location: time.UTC,
	}
	report, err := BuildComprehensiveReport(in)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.TotalMessages != 5 || len(report.Daily) != 1 || report.Daily[0].MessageCount != 3 {
		t.Fatalf("unexpected totals/daily: %+v", report)
	}
	if len(report.StrongTraits) != 1 || report.StrongTraits[0].Trait != domain.TraitOpenness {
		t.Fatalf("expected only openness above 50, got %+v", report.StrongTraits)
	}
	if report.MostActive == "" || len(report.Activity) == 0 {
		t.Fatalf("expected activity breakdown")
	}
	want := []string{
		"Great positive outlook! Keep it up!",
		"Share your positivity with others",
		"Try expressing yourself more - longer messages provide better insights",
	}
	if !reflect.DeepEqual(report.Recommendations, want) {
		t.Fatalf("unexpected recommendations: %v", report.Recommendations)
	}
}

func TestBuildStatsReport(t *testing.T) {
	now := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)
	if _, err := BuildStatsReport(domain.UserSummary{}, now, time.UTC); !errors.Is(err, domain.ErrInsufficientData) {
		t.Fatalf("expected insufficient data, got %v", err)
	}

	first := time.Date(2026, time.March, 1, 23, 0, 0, 0, time.UTC)
	last := time.Date(2026, time.March, 3, 8, 0, 0, 0, time.UTC)
	report, err := BuildStatsReport(domain.UserSummary{
		TotalCount:   6,
		MeanPolarity: -0.15,
		FirstAt:      &first,
		LastAt:       &last,
	}, now, time.UTC)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.DaysActive != 3 || report.MessagesPerDay != 2 {
		t.Fatalf("unexpected activity: days=%d per_day=%v", report.DaysActive, report.MessagesPerDay)
	}
	if report.Mood != domain.MoodNegative || report.LastMessageDate != "2026-03-03" {
		t.Fatalf("unexpected mood/date: %+v", report)
	}
	if report.HeuristicAccuracy != 30 {
		t.Fatalf("expected accuracy 30, got %d", report.HeuristicAccuracy)
	}
}

func TestHeuristicAccuracyCapped(t *testing.T) {
	if HeuristicAccuracy(19) != 95 || HeuristicAccuracy(1000) != 95 || HeuristicAccuracy(0) != 0 {
		t.Fatalf("expected accuracy capped at 95")
	}
}

func TestShouldSendFeedback(t *testing.T) {
	cases := []struct {
		total, every int
		want         bool
	}{
		{10, 10, true}, {20, 10, true}, {9, 10, false}, {0, 10, false}, {5, 0, false},
	}
	for _, c := range cases {
		if got := ShouldSendFeedback(c.total, c.every); got != c.want {
			t.Fatalf("ShouldSendFeedback(%d,%d) = %v", c.total, c.every, got)
		}
	}
}

func TestReportsAreIdempotent(t *testing.T) {
	w := window(0.2, -0.1, 0.4)
	a, _ := BuildMoodReport(w, nil)
	b, _ := BuildMoodReport(w, nil)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical reports from the same window")
	}
}
