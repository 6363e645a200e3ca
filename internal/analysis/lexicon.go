// Package analysis contiene el motor de scoring y agregacion: funciones puras
// sobre texto y ventanas de mensajes, sin estado ni acceso a almacenamiento.
package analysis

import "behavior-analytics/internal/domain"

// traitKeywords son los indicadores por rasgo. Se cuentan como substrings.
var traitKeywords = map[domain.Trait][]string{
	domain.TraitExtraversion:      {"party", "friends", "social", "outgoing", "energy", "talk", "people"},
	domain.TraitOpenness:          {"creative", "art", "new", "explore", "imagination", "curious", "different"},
	domain.TraitConscientiousness: {"organized", "plan", "schedule", "work", "goal", "discipline", "complete"},
	domain.TraitAgreeableness:     {"help", "kind", "support", "care", "team", "cooperation", "please"},
	domain.TraitNeuroticism:       {"stress", "worry", "anxious", "nervous", "fear", "sad", "upset"},
}

var stressKeywords = []string{"deadline", "pressure", "overwhelmed", "can't", "too much", "tired", "exhausted"}

// TraitKeywords devuelve una copia de los indicadores de un rasgo.
func TraitKeywords(t domain.Trait) []string {
	return append([]string(nil), traitKeywords[t]...)
}

// StressKeywords devuelve una copia de los indicadores de estres.
func StressKeywords() []string {
	return append([]string(nil), stressKeywords...)
}
