package models

import "time"

const (
	DistanceUnitYards = "yards"
	DistanceUnitMiles = "miles"
)

// Faixa de distância configurada pelo prestador. As faixas deveriam ser
// disjuntas e ordenadas por tier, mas o motor não exige isso: a resolução
// avalia todas as faixas e fica com o melhor percentual.
type ProximityDiscountTier struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"uniqueIndex:idx_tier_provider_tier" json:"provider_id"`

	Tier         int     `gorm:"uniqueIndex:idx_tier_provider_tier" json:"tier"`
	MinDistance  float64 `json:"min_distance"`
	MaxDistance  float64 `json:"max_distance"`
	DistanceUnit string  `gorm:"size:10" json:"distance_unit"`

	Discounts []ProximityDiscount `gorm:"constraint:OnDelete:CASCADE;foreignKey:TierID" json:"discounts"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProximityDiscount struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	TierID uint `gorm:"uniqueIndex:idx_discount_tier_count" json:"tier_id"`

	AppointmentCount   int     `gorm:"uniqueIndex:idx_discount_tier_count" json:"appointment_count"`
	DiscountPercentage float64 `json:"discount_percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
