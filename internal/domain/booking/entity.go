package booking

import (
	"time"

	"github.com/viciniti/service-scheduler/internal/geo"
)

type AvailabilityInput struct {
	ServiceID uint
	Consumer  *geo.Point
}

// Slot anotado com preço. DiscountPercentage zero significa preço cheio.
type PricedSlot struct {
	ID                 string    `json:"id"`
	Start              time.Time `json:"start"`
	End                time.Time `json:"end"`
	OriginalPrice      float64   `json:"original_price"`
	FinalPrice         float64   `json:"final_price"`
	DiscountPercentage float64   `json:"discount_percentage"`
	NearbyAppointments int       `json:"nearby_appointments"`
}

// DayAvailability mapeia day_key para os slots ofertados naquele dia.
type DayAvailability map[string][]PricedSlot
