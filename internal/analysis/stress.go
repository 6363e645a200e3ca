package analysis

import (
	"strings"

	"behavior-analytics/internal/domain"
)

const maxStressLevel = 10

// DetectStress cuenta cuantos indicadores distintos aparecen como substring.
// La coincidencia parcial dentro de otras palabras es intencional.
func DetectStress(text string) domain.Stress {
	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range stressKeywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	level := StressLevel(matches)
	return domain.Stress{Level: level, Category: ClassifyStress(level)}
}

// StressLevel convierte la cantidad de indicadores en un nivel 0-10.
func StressLevel(matches int) int {
	if matches < 0 {
		return 0
	}
	return min(matches*2, maxStressLevel)
}

func ClassifyStress(level int) domain.StressCategory {
	switch {
	case level >= 7:
		return domain.StressHigh
	case level >= 4:
		return domain.StressModerate
	default:
		return domain.StressLow
	}
}
