package analysis

import (
	"math"
	"strings"

	"behavior-analytics/internal/domain"
)

const moodThreshold = 0.1

// SentimentScorer empaqueta la salida del primitivo con umbrales de animo.
type SentimentScorer struct {
	primitive Primitive
}

func NewSentimentScorer(primitive Primitive) *SentimentScorer {
	if primitive == nil {
		primitive = NewLexiconPrimitive()
	}
	return &SentimentScorer{primitive: primitive}
}

// Analyze devuelve el sentimiento del texto. Texto vacio produce el neutro por defecto.
func (s *SentimentScorer) Analyze(text string) domain.Sentiment {
	if strings.TrimSpace(text) == "" {
		return domain.Sentiment{Mood: domain.MoodNeutral}
	}
	raw := s.primitive.Score(text)
	polarity := clamp(raw.Polarity, -1, 1)
	return domain.Sentiment{
		Polarity:     polarity,
		Subjectivity: clamp(raw.Subjectivity, 0, 1),
		Mood:         ClassifyMood(polarity),
		Confidence:   math.Abs(polarity),
	}
}

// ClassifyMood aplica los umbrales estrictos +-0.1.
func ClassifyMood(polarity float64) domain.Mood {
	switch {
	case polarity > moodThreshold:
		return domain.MoodPositive
	case polarity < -moodThreshold:
		return domain.MoodNegative
	default:
		return domain.MoodNeutral
	}
}

// WordCount cuenta palabras separadas por espacios.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
