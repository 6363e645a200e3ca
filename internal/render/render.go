// Package render convierte los reportes del motor en texto para el chat.
// El formato es Markdown legacy de Telegram (negrita con un asterisco).
package render

import (
	"fmt"
	"strings"

	"behavior-analytics/internal/domain"
)

const barSegments = 10

// MoodLabel acompaña la categoria de animo con su emoji.
func MoodLabel(m domain.Mood) string {
	return fmt.Sprintf("%s %s", m, MoodEmoji(m))
}

func MoodEmoji(m domain.Mood) string {
	switch m {
	case domain.MoodPositive:
		return "😊"
	case domain.MoodNegative:
		return "😟"
	default:
		return "😐"
	}
}

// StressLabel devuelve la categoria de estres con su semaforo.
func StressLabel(c domain.StressCategory) string {
	switch c {
	case domain.StressHigh:
		return "High Stress 🔴"
	case domain.StressModerate:
		return "Moderate Stress 🟡"
	default:
		return "Low Stress 🟢"
	}
}

// Bar dibuja una barra de 10 segmentos con filled segmentos llenos.
func Bar(filled int) string {
	filled = max(0, min(filled, barSegments))
	return strings.Repeat("█", filled) + strings.Repeat("░", barSegments-filled)
}

func percent(ratio float64) string {
	return fmt.Sprintf("%.1f%%", ratio*100)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func bullets(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString("• ")
		b.WriteString(l)
		b.WriteString("\n")
	}
}
