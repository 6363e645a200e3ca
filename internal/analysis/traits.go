package analysis

import (
	"strings"

	"behavior-analytics/internal/domain"
)

const (
	traitPointsPerMatch = 5
	maxTraitScore       = 100
	barSegments         = 10
)

// ScoreTraits puntua los rasgos sobre una ventana de textos. El orden de la
// ventana no altera el resultado.
func ScoreTraits(texts []string) domain.TraitScores {
	all := strings.ToLower(strings.Join(texts, " "))
	scores := make(domain.TraitScores, len(domain.Traits))
	for _, trait := range domain.Traits {
		count := 0
		for _, kw := range traitKeywords[trait] {
			count += strings.Count(all, kw)
		}
		scores[trait] = TraitScore(count)
	}
	return scores
}

// TraitScore normaliza un conteo crudo a 0-100, saturando en 100.
func TraitScore(count int) int {
	if count <= 0 {
		return 0
	}
	return min(count*traitPointsPerMatch, maxTraitScore)
}

// DominantTrait devuelve el rasgo de mayor puntaje; en empate gana el primero
// segun domain.Traits.
func DominantTrait(scores domain.TraitScores) domain.Trait {
	best := domain.Traits[0]
	for _, t := range domain.Traits[1:] {
		if scores[t] > scores[best] {
			best = t
		}
	}
	return best
}

// BarFilled devuelve los segmentos llenos de la barra de 10.
func BarFilled(score int) int {
	filled := score / 10
	if filled < 0 {
		return 0
	}
	return min(filled, barSegments)
}
