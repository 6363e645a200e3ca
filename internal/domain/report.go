package domain

import "time"

// ReportKind identifica cada tipo de reporte.
type ReportKind string

const (
	ReportMood          ReportKind = "mood"
	ReportPersonality   ReportKind = "personality"
	ReportComprehensive ReportKind = "comprehensive"
	ReportStats         ReportKind = "stats"
)

// MoodReport resume el estado actual y la tendencia reciente.
type MoodReport struct {
	Current          Sentiment `json:"current"`
	CurrentStress    Stress    `json:"current_stress"`
	AverageSentiment float64   `json:"average_sentiment"`
	Trend            Trend     `json:"trend"`
	WindowSize       int       `json:"window_size"`
	Insights         []string  `json:"insights"`
}

// TraitLine es una fila del reporte de personalidad.
type TraitLine struct {
	Trait       Trait  `json:"trait"`
	Description string `json:"description"`
	Score       int    `json:"score"`
	// Filled es la cantidad de segmentos llenos de la barra de 10.
	Filled int `json:"filled"`
}

type PersonalityReport struct {
	Traits   []TraitLine `json:"traits"`
	Dominant Trait       `json:"dominant"`
	Insights []string    `json:"insights"`
}

// DailyAggregate agrupa mensajes por fecha calendario local.
type DailyAggregate struct {
	Date          string  `json:"date"`
	MessageCount  int     `json:"message_count"`
	MeanSentiment float64 `json:"mean_sentiment"`
	Mood          Mood    `json:"mood"`
}

// ActivityBucket cuenta mensajes por franja horaria.
type ActivityBucket struct {
	Period     Period  `json:"period"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ComprehensiveReport struct {
	TotalMessages    int              `json:"total_messages"`
	AverageSentiment float64          `json:"average_sentiment"`
	AverageWords     float64          `json:"average_words"`
	Daily            []DailyAggregate `json:"daily"`
	StrongTraits     []TraitLine      `json:"strong_traits"`
	Activity         []ActivityBucket `json:"activity"`
	MostActive       Period           `json:"most_active"`
	Recommendations  []string         `json:"recommendations"`
}

type StatsReport struct {
	TotalMessages    int       `json:"total_messages"`
	DaysActive       int       `json:"days_active"`
	MessagesPerDay   float64   `json:"messages_per_day"`
	AverageSentiment float64   `json:"average_sentiment"`
	Mood             Mood      `json:"mood"`
	LastMessageAt    time.Time `json:"last_message_at"`
	LastMessageDate  string    `json:"last_message_date"`
	// HeuristicAccuracy crece con el volumen de mensajes; no es una precision estadistica.
	HeuristicAccuracy int `json:"heuristic_accuracy"`
}

// Feedback es el resumen espontaneo emitido cada N mensajes.
type Feedback struct {
	MessageNumber int            `json:"message_number"`
	Mood          Mood           `json:"mood"`
	Stress        StressCategory `json:"stress"`
	Confidence    float64        `json:"confidence"`
}
