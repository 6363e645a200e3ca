package analysis

import (
	"strings"
	"unicode"
)

// RawScore es la salida del primitivo de sentimiento.
type RawScore struct {
	Polarity     float64
	Subjectivity float64
}

// Primitive estima polaridad y subjetividad de un texto.
type Primitive interface {
	Score(text string) RawScore
}

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// LexiconPrimitive promedia polaridad y subjetividad de las palabras con carga
// afectiva, aplicando intensificadores y negaciones sobre la palabra siguiente.
type LexiconPrimitive struct {
	words        map[string]lexiconEntry
	intensifiers map[string]float64
	negations    map[string]struct{}
}

func NewLexiconPrimitive() *LexiconPrimitive {
	return &LexiconPrimitive{
		words:        defaultSentimentLexicon(),
		intensifiers: defaultIntensifiers(),
		negations: map[string]struct{}{
			"not": {}, "no": {}, "never": {}, "don't": {}, "doesn't": {}, "didn't": {},
			"isn't": {}, "wasn't": {}, "aren't": {}, "won't": {}, "can't": {}, "cannot": {},
		},
	}
}

func defaultSentimentLexicon() map[string]lexiconEntry {
	return map[string]lexiconEntry{
		"good": {0.7, 0.6}, "great": {0.8, 0.75}, "awesome": {1.0, 1.0}, "amazing": {0.6, 0.9},
		"excellent": {1.0, 1.0}, "happy": {0.8, 1.0}, "glad": {0.5, 1.0}, "love": {0.5, 0.6},
		"lovely": {0.5, 0.75}, "nice": {0.6, 1.0}, "wonderful": {1.0, 1.0}, "fantastic": {0.4, 0.9},
		"best": {1.0, 0.3}, "better": {0.5, 0.5}, "fun": {0.3, 0.2}, "beautiful": {0.85, 1.0},
		"excited": {0.4, 0.75}, "calm": {0.3, 0.75}, "proud": {0.8, 1.0}, "thanks": {0.2, 0.2},
		"kind": {0.6, 0.9}, "enjoy": {0.4, 0.5}, "relaxed": {0.3, 0.5}, "perfect": {1.0, 1.0},
		"bad": {-0.7, 0.67}, "terrible": {-1.0, 1.0}, "awful": {-1.0, 1.0}, "horrible": {-1.0, 1.0},
		"sad": {-0.5, 1.0}, "angry": {-0.5, 1.0}, "hate": {-0.8, 0.9}, "worst": {-1.0, 1.0},
		"worse": {-0.4, 0.6}, "upset": {-0.6, 0.8}, "anxious": {-0.25, 0.75}, "tired": {-0.4, 0.7},
		"exhausted": {-0.4, 0.8}, "stressed": {-0.5, 0.8}, "overwhelmed": {-0.4, 0.8},
		"lonely": {-0.5, 1.0}, "boring": {-1.0, 1.0}, "annoying": {-0.8, 0.9}, "hurt": {-0.5, 0.7},
		"depressed": {-0.8, 0.9}, "scared": {-0.6, 0.9}, "wrong": {-0.5, 0.9}, "difficult": {-0.5, 1.0},
		"hard": {-0.3, 0.5}, "pain": {-0.6, 0.7}, "fail": {-0.5, 0.3}, "failed": {-0.5, 0.3},
		"miserable": {-1.0, 1.0}, "nervous": {-0.3, 0.7}, "worried": {-0.4, 0.8},
	}
}

func defaultIntensifiers() map[string]float64 {
	return map[string]float64{
		"very": 1.3, "really": 1.3, "so": 1.3, "extremely": 1.5, "super": 1.4,
		"incredibly": 1.5, "quite": 1.1, "totally": 1.3, "slightly": 0.5, "somewhat": 0.7,
	}
}

// Score implementa Primitive. Un texto sin palabras conocidas es neutro y objetivo.
func (p *LexiconPrimitive) Score(text string) RawScore {
	tokens := tokenize(text)

	var (
		polaritySum     float64
		subjectivitySum float64
		assessed        int
		multiplier      = 1.0
		negated         bool
	)
	for _, tok := range tokens {
		if _, ok := p.negations[tok]; ok {
			negated = true
			continue
		}
		if m, ok := p.intensifiers[tok]; ok {
			multiplier *= m
			continue
		}
		entry, ok := p.words[tok]
		if !ok {
			continue
		}
		polarity := entry.polarity * multiplier
		subjectivity := entry.subjectivity * multiplier
		if negated {
			polarity *= -0.5
		}
		polaritySum += polarity
		subjectivitySum += subjectivity
		assessed++
		multiplier = 1.0
		negated = false
	}

	if assessed == 0 {
		return RawScore{}
	}
	return RawScore{
		Polarity:     clamp(polaritySum/float64(assessed), -1, 1),
		Subjectivity: clamp(subjectivitySum/float64(assessed), 0, 1),
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
