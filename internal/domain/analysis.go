package domain

// Mood es la categoria derivada de la polaridad.
type Mood string

const (
	MoodPositive Mood = "Positive"
	MoodNegative Mood = "Negative"
	MoodNeutral  Mood = "Neutral"
)

// Sentiment es el resultado empaquetado del scorer para un mensaje.
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
	Mood         Mood    `json:"mood"`
	Confidence   float64 `json:"confidence"`
}

// StressCategory clasifica el nivel de estres.
type StressCategory string

const (
	StressLow      StressCategory = "Low"
	StressModerate StressCategory = "Moderate"
	StressHigh     StressCategory = "High"
)

// Stress es el nivel de estres (0-10) detectado en un mensaje.
type Stress struct {
	Level    int            `json:"level"`
	Category StressCategory `json:"category"`
}

// Trend es la direccion del animo en una ventana.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
)

// Period es la franja horaria local de un mensaje.
type Period string

const (
	PeriodMorning   Period = "Morning"
	PeriodAfternoon Period = "Afternoon"
	PeriodEvening   Period = "Evening"
	PeriodNight     Period = "Night"
)

// Periods fija el orden de desempate de la franja mas activa.
var Periods = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening, PeriodNight}
