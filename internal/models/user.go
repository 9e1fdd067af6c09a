package models

import "time"

// Consumidor ou dono de perfil de prestador. Convidados são criados
// automaticamente pelo fluxo de agendamento, apenas com e-mail.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100" json:"name"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	UserType string `gorm:"size:10;default:'consumer'" json:"user_type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
