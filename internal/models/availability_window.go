package models

import "time"

// Bloco de disponibilidade declarado pelo prestador. DayKey é um rótulo de
// dia da semana ou uma data explícita ("2025-06-15"). Substituído por
// completo a cada edição (delete + insert, nunca merge).
type AvailabilityWindow struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"uniqueIndex:idx_window_provider_day_start" json:"provider_id"`

	DayKey    string    `gorm:"size:20;uniqueIndex:idx_window_provider_day_start" json:"day_key"`
	StartTime time.Time `gorm:"uniqueIndex:idx_window_provider_day_start" json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
