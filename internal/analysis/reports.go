package analysis

import (
	"time"

	"behavior-analytics/internal/domain"
)

const (
	// MoodWindow es la cantidad de mensajes recientes del reporte de animo.
	MoodWindow = 20
	// TraitWindow es la cantidad de mensajes recientes usados para puntuar rasgos.
	TraitWindow = 50
	// WeeklyDays es el alcance del desglose diario del reporte completo.
	WeeklyDays = 7
	// ComprehensiveMinimum es el historial minimo del reporte completo.
	ComprehensiveMinimum = 5

	moodMinimum  = 1
	statsMinimum = 1

	moodSupportThreshold     = 0.3
	reportSentimentThreshold = 0.2
	shortMessageWords        = 5
	highStressLevel          = 5
	accuracyPerMessage       = 5
	maxHeuristicAccuracy     = 95
)

var traitInsightThresholds = []struct {
	trait     domain.Trait
	threshold int
	insight   string
}{
	{domain.TraitExtraversion, 60, "You seem socially engaged and outgoing"},
	{domain.TraitOpenness, 70, "You show creativity and openness to new ideas"},
	{domain.TraitConscientiousness, 65, "You demonstrate good organization skills"},
	{domain.TraitAgreeableness, 70, "You show cooperative and helpful tendencies"},
	{domain.TraitNeuroticism, 60, "You may be sensitive to stress - practice self-care"},
}

// BuildMoodReport arma el reporte de animo a partir de una ventana ordenada del
// mas nuevo al mas viejo.
func BuildMoodReport(window []domain.MessageRecord, scorer *SentimentScorer) (domain.MoodReport, error) {
	if len(window) < moodMinimum {
		return domain.MoodReport{}, domain.NewInsufficientData(domain.ReportMood, moodMinimum, len(window))
	}
	if scorer == nil {
		scorer = NewSentimentScorer(nil)
	}
	if len(window) > MoodWindow {
		window = window[:MoodWindow]
	}

	polarities := make([]float64, len(window))
	for i, r := range window {
		polarities[i] = r.Polarity
	}
	avg := mean(polarities)

	latest := window[0].Text
	report := domain.MoodReport{
		Current:          scorer.Analyze(latest),
		CurrentStress:    DetectStress(latest),
		AverageSentiment: avg,
		Trend:            TwoPointTrend(polarities),
		WindowSize:       len(window),
	}

	switch {
	case avg < -moodSupportThreshold:
		report.Insights = append(report.Insights,
			"Consider talking to someone you trust",
			"Try some relaxation techniques")
	case avg > moodSupportThreshold:
		report.Insights = append(report.Insights,
			"Great positive energy! Keep it up!",
			"You seem to be in a good mental space")
	default:
		report.Insights = append(report.Insights,
			"Your mood seems balanced",
			"Continue monitoring your emotional patterns")
	}
	if report.CurrentStress.Level > highStressLevel {
		report.Insights = append(report.Insights, "High stress detected - take breaks when possible")
	}
	return report, nil
}

// BuildPersonalityReport exige al menos un rasgo con puntaje distinto de cero.
func BuildPersonalityReport(scores domain.TraitScores) (domain.PersonalityReport, error) {
	if scores.AllZero() {
		return domain.PersonalityReport{}, domain.NewInsufficientData(domain.ReportPersonality, 1, 0)
	}

	report := domain.PersonalityReport{
		Traits:   make([]domain.TraitLine, 0, len(domain.Traits)),
		Dominant: DominantTrait(scores),
	}
	for _, t := range domain.Traits {
		report.Traits = append(report.Traits, traitLine(t, scores[t]))
	}
	for _, rule := range traitInsightThresholds {
		if scores[rule.trait] > rule.threshold {
			report.Insights = append(report.Insights, rule.insight)
		}
	}
	return report, nil
}

// ComprehensiveInput reune las lecturas del historial para el reporte completo.
type ComprehensiveInput struct {
	Summary domain.UserSummary
	// Week son los mensajes de los ultimos WeeklyDays dias.
	Week     []domain.MessageRecord
	All      []domain.MessageRecord
	Traits   domain.TraitScores
	Location *time.Location
}

func BuildComprehensiveReport(in ComprehensiveInput) (domain.ComprehensiveReport, error) {
	if in.Summary.TotalCount < ComprehensiveMinimum {
		return domain.ComprehensiveReport{}, domain.NewInsufficientData(domain.ReportComprehensive, ComprehensiveMinimum, in.Summary.TotalCount)
	}

	report := domain.ComprehensiveReport{
		TotalMessages:    in.Summary.TotalCount,
		AverageSentiment: in.Summary.MeanPolarity,
		AverageWords:     in.Summary.MeanWordCount,
		Daily:            DailyBreakdown(in.Week, in.Location),
	}
	for _, t := range domain.Traits {
		if in.Traits[t] > 50 {
			report.StrongTraits = append(report.StrongTraits, traitLine(t, in.Traits[t]))
		}
	}
	report.Activity, report.MostActive = ActivityBreakdown(in.All, in.Location)

	switch {
	case report.AverageSentiment < -reportSentimentThreshold:
		report.Recommendations = append(report.Recommendations,
			"Consider practicing gratitude or positive self-talk",
			"Engage in activities that boost your mood")
	case report.AverageSentiment > reportSentimentThreshold:
		report.Recommendations = append(report.Recommendations,
			"Great positive outlook! Keep it up!",
			"Share your positivity with others")
	}
	if report.AverageWords < shortMessageWords {
		report.Recommendations = append(report.Recommendations,
			"Try expressing yourself more - longer messages provide better insights")
	}
	return report, nil
}

func BuildStatsReport(summary domain.UserSummary, now time.Time, loc *time.Location) (domain.StatsReport, error) {
	if summary.TotalCount < statsMinimum {
		return domain.StatsReport{}, domain.NewInsufficientData(domain.ReportStats, statsMinimum, summary.TotalCount)
	}

	days := 1
	if summary.FirstAt != nil {
		days = DaysActive(*summary.FirstAt, now, loc)
	}
	report := domain.StatsReport{
		TotalMessages:     summary.TotalCount,
		DaysActive:        days,
		MessagesPerDay:    float64(summary.TotalCount) / float64(days),
		AverageSentiment:  summary.MeanPolarity,
		Mood:              ClassifyMood(summary.MeanPolarity),
		HeuristicAccuracy: HeuristicAccuracy(summary.TotalCount),
	}
	if summary.LastAt != nil {
		report.LastMessageAt = *summary.LastAt
		report.LastMessageDate = summary.LastAt.In(location(loc)).Format(dateLayout)
	}
	return report, nil
}

// HeuristicAccuracy es un indicador cosmetico de confianza: 5 puntos por
// mensaje con tope en 95. No es una medida estadistica.
func HeuristicAccuracy(total int) int {
	if total <= 0 {
		return 0
	}
	return min(total*accuracyPerMessage, maxHeuristicAccuracy)
}

// ShouldSendFeedback indica si el contador alcanzo un multiplo de every.
func ShouldSendFeedback(total, every int) bool {
	return every > 0 && total > 0 && total%every == 0
}

func BuildFeedback(total int, sentiment domain.Sentiment, stress domain.Stress) domain.Feedback {
	return domain.Feedback{
		MessageNumber: total,
		Mood:          sentiment.Mood,
		Stress:        stress.Category,
		Confidence:    sentiment.Confidence,
	}
}

func traitLine(t domain.Trait, score int) domain.TraitLine {
	return domain.TraitLine{
		Trait:       t,
		Description: t.Description(),
		Score:       score,
		Filled:      BarFilled(score),
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
