package domain

// Trait es una de las cinco dimensiones Big Five.
type Trait string

const (
	TraitExtraversion      Trait = "extraversion"
	TraitOpenness          Trait = "openness"
	TraitConscientiousness Trait = "conscientiousness"
	TraitAgreeableness     Trait = "agreeableness"
	TraitNeuroticism       Trait = "neuroticism"
)

// Traits fija el orden de iteración y de desempate del rasgo dominante.
var Traits = []Trait{
	TraitExtraversion,
	TraitOpenness,
	TraitConscientiousness,
	TraitAgreeableness,
	TraitNeuroticism,
}

// TraitScores mapea cada rasgo a un puntaje entre 0 y 100.
type TraitScores map[Trait]int

// AllZero indica que la ventana no aporto evidencia para ningun rasgo.
func (s TraitScores) AllZero() bool {
	for _, t := range Traits {
		if s[t] != 0 {
			return false
		}
	}
	return true
}

// Description devuelve la etiqueta legible del rasgo.
func (t Trait) Description() string {
	switch t {
	case TraitExtraversion:
		return "Social Energy & Outgoingness"
	case TraitOpenness:
		return "Creativity & Open-mindedness"
	case TraitConscientiousness:
		return "Organization & Discipline"
	case TraitAgreeableness:
		return "Cooperation & Kindness"
	case TraitNeuroticism:
		return "Emotional Sensitivity"
	default:
		return string(t)
	}
}
