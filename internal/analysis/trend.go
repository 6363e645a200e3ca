package analysis

import "behavior-analytics/internal/domain"

// TwoPointTrend compara el registro mas antiguo con el mas reciente de la
// ventana (ordenada del mas nuevo al mas viejo). Es sensible al ruido.
func TwoPointTrend(newestFirst []float64) domain.Trend {
	if len(newestFirst) < 2 {
		return domain.TrendDeclining
	}
	oldest := newestFirst[len(newestFirst)-1]
	newest := newestFirst[0]
	if oldest < newest {
		return domain.TrendImproving
	}
	return domain.TrendDeclining
}
