package render

import "fmt"

// Welcome se envia como texto plano: el nombre del usuario puede romper Markdown.
func Welcome(name string) string {
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`🤖 Welcome %s! I'm your Intelligent Behavior Analysis Bot!

I can help you understand:
📊 Your mood patterns
🧠 Personality insights
📈 Behavioral trends
💡 Personalized recommendations

🔒 Privacy: Your data is stored only to compute your reports and is never shared.

Start chatting with me and I'll analyze your communication patterns!

Available commands:
/mood - Current mood analysis
/personality - Personality assessment
/report - Detailed behavior report
/stats - Your usage statistics
/help - Full command list`, name)
}

const help = `🤖 *BEHAVIOR ANALYSIS BOT HELP*

*Available Commands:*
• /start - Initialize bot and registration
• /mood - Get detailed mood analysis
• /personality - View personality assessment
• /report - Generate comprehensive report
• /stats - View your usage statistics
• /help - Show this help message

*How It Works:*
1. Just chat normally with the bot
2. Every message is analyzed for mood and patterns
3. Use commands to get detailed insights
4. Data improves accuracy over time

*Features:*
🎯 Real-time sentiment analysis
🧠 Big Five personality assessment
📊 Behavioral pattern recognition
📈 Mood trend tracking
💡 Personalized recommendations

Start chatting to begin your analysis! 💬`

func Help() string {
	return help
}

// Button es un boton del teclado inline de bienvenida.
type Button struct {
	Text string
	Data string
}

// WelcomeButtons lista los atajos del mensaje de bienvenida, uno por fila.
func WelcomeButtons() []Button {
	return []Button{
		{Text: "📊 Analyze My Mood", Data: "mood"},
		{Text: "🧠 Personality Test", Data: "personality"},
		{Text: "📈 Get Report", Data: "report"},
	}
}
