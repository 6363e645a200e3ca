package domain

import "time"

// MessageRecord es inmutable: la polaridad se persiste al ingerir y no se recalcula.
type MessageRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Polarity  float64   `json:"polarity"`
	WordCount int       `json:"word_count"`
}
