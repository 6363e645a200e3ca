package render

import (
	"errors"
	"fmt"
	"strings"

	"behavior-analytics/internal/domain"
)

func Mood(r domain.MoodReport) string {
	var b strings.Builder
	b.WriteString("🎯 *DETAILED MOOD ANALYSIS*\n\n")
	b.WriteString("📊 *Current State:*\n")
	fmt.Fprintf(&b, "• Mood: %s\n", MoodLabel(r.Current.Mood))
	fmt.Fprintf(&b, "• Stress Level: %s\n", StressLabel(r.CurrentStress.Category))
	fmt.Fprintf(&b, "• Emotional Intensity: %s\n\n", percent(r.Current.Confidence))
	fmt.Fprintf(&b, "📈 *Recent Trends (Last %d messages):*\n", r.WindowSize)
	fmt.Fprintf(&b, "• Average Sentiment: %.2f\n", r.AverageSentiment)
	fmt.Fprintf(&b, "• Mood Trend: %s\n", titleCase(string(r.Trend)))
	fmt.Fprintf(&b, "• Message Analysis Count: %d\n\n", r.WindowSize)
	b.WriteString("💡 *Insights:*\n")
	bullets(&b, r.Insights)
	return b.String()
}

func Personality(r domain.PersonalityReport) string {
	var b strings.Builder
	b.WriteString("🧠 *PERSONALITY ANALYSIS*\n\n")
	for _, line := range r.Traits {
		fmt.Fprintf(&b, "*%s:*\n%s %d%%\n\n", line.Description, Bar(line.Filled), line.Score)
	}
	fmt.Fprintf(&b, "🎯 *Dominant Trait:* %s\n", r.Dominant.Description())
	bullets(&b, r.Insights)
	return b.String()
}

func Comprehensive(r domain.ComprehensiveReport) string {
	var b strings.Builder
	b.WriteString("📋 *COMPREHENSIVE BEHAVIOR REPORT*\n\n")
	b.WriteString("👤 *User Profile:*\n")
	fmt.Fprintf(&b, "• Total Messages Analyzed: %d\n", r.TotalMessages)
	fmt.Fprintf(&b, "• Average Sentiment: %.2f\n", r.AverageSentiment)
	fmt.Fprintf(&b, "• Average Words per Message: %.1f\n\n", r.AverageWords)

	b.WriteString("📊 *Weekly Summary:*\n")
	for _, d := range r.Daily {
		fmt.Fprintf(&b, "• %s: %d messages, Mood %s (%.2f)\n", d.Date, d.MessageCount, MoodEmoji(d.Mood), d.MeanSentiment)
	}

	b.WriteString("\n🧠 *Personality Insights:*\n")
	for _, t := range r.StrongTraits {
		fmt.Fprintf(&b, "• %s: %d%% (Above Average)\n", titleCase(string(t.Trait)), t.Score)
	}

	if len(r.Activity) > 0 {
		b.WriteString("\n⏰ *Activity Patterns:*\n")
		fmt.Fprintf(&b, "• Most Active Time: %s\n", r.MostActive)
		for _, a := range r.Activity {
			fmt.Fprintf(&b, "• %s: %d messages (%.1f%%)\n", a.Period, a.Count, a.Percentage)
		}
	}

	b.WriteString("\n💡 *Recommendations:*\n")
	bullets(&b, r.Recommendations)
	return b.String()
}

func Stats(r domain.StatsReport) string {
	last := r.LastMessageDate
	if last == "" {
		last = "N/A"
	}
	var b strings.Builder
	b.WriteString("📊 *YOUR STATISTICS*\n\n")
	b.WriteString("📈 *Usage:*\n")
	fmt.Fprintf(&b, "• Total Messages: %d\n", r.TotalMessages)
	fmt.Fprintf(&b, "• Days Active: %d\n", r.DaysActive)
	fmt.Fprintf(&b, "• Messages per Day: %.1f\n\n", r.MessagesPerDay)
	b.WriteString("😊 *Mood Analysis:*\n")
	fmt.Fprintf(&b, "• Average Sentiment: %.2f\n", r.AverageSentiment)
	fmt.Fprintf(&b, "• Mood Category: %s\n\n", r.Mood)
	b.WriteString("⏰ *Activity:*\n")
	fmt.Fprintf(&b, "• Last Message: %s\n", last)
	fmt.Fprintf(&b, "• Analysis Accuracy: %d%%\n\n", r.HeuristicAccuracy)
	b.WriteString("💫 Keep chatting for more accurate insights!\n")
	return b.String()
}

// Feedback es el resumen corto que se envia sin formato Markdown.
func Feedback(f domain.Feedback) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Quick Analysis (Message #%d):\n", f.MessageNumber)
	fmt.Fprintf(&b, "• Mood: %s\n", MoodLabel(f.Mood))
	fmt.Fprintf(&b, "• Stress: %s\n", StressLabel(f.Stress))
	fmt.Fprintf(&b, "• Confidence: %s\n\n", percent(f.Confidence))
	b.WriteString("Type /mood for detailed analysis!")
	return b.String()
}

// InsufficientData traduce el error estructurado en una invitacion a seguir
// conversando. Devuelve false si err no es de datos insuficientes.
func InsufficientData(err error) (string, bool) {
	var ide *domain.InsufficientDataError
	if !errors.As(err, &ide) {
		return "", false
	}
	switch ide.Report {
	case domain.ReportMood:
		return "I need more messages to analyze your mood. Keep chatting with me! 😊", true
	case domain.ReportPersonality:
		return "I need more messages to analyze your personality. Keep chatting! 🧠", true
	case domain.ReportComprehensive:
		return fmt.Sprintf("I need at least %d messages to generate a comprehensive report. Keep chatting! 📊", ide.Required), true
	default:
		return "No data available yet. Start chatting to see your stats! 📊", true
	}
}
