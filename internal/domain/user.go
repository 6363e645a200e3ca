package domain

import "time"

// User es la identidad observada en el transporte y su contador de mensajes.
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username,omitempty"`
	DisplayName   string    `json:"display_name,omitempty"`
	RegisteredAt  time.Time `json:"registered_at"`
	TotalMessages int       `json:"total_messages"`
}

// UserSummary agrega el historial completo de un usuario.
type UserSummary struct {
	TotalCount    int        `json:"total_count"`
	MeanPolarity  float64    `json:"mean_polarity"`
	MeanWordCount float64    `json:"mean_word_count"`
	FirstAt       *time.Time `json:"first_at,omitempty"`
	LastAt        *time.Time `json:"last_at,omitempty"`
}
