package booking

import (
	"math"

	"github.com/viciniti/service-scheduler/internal/geo"
	"github.com/viciniti/service-scheduler/internal/models"
)

// Máximo de agendamentos próximos que uma linha de desconto expressa.
// Contagens acima disso são truncadas para a consulta.
const MaxDiscountCount = 5

type DiscountQuote struct {
	Tier               int     `json:"tier"`
	Distance           float64 `json:"distance"`
	DistanceUnit       string  `json:"distance_unit"`
	NearbyAppointments int     `json:"nearby_appointments"`
	DiscountPercentage float64 `json:"discount_percentage"`
}

func tierBoundsMeters(tier models.ProximityDiscountTier) (geo.Meters, geo.Meters) {
	if tier.DistanceUnit == models.DistanceUnitMiles {
		return geo.MilesToMeters(tier.MinDistance), geo.MilesToMeters(tier.MaxDistance)
	}
	return geo.YardsToMeters(tier.MinDistance), geo.YardsToMeters(tier.MaxDistance)
}

func distanceInUnit(d geo.Meters, unit string) float64 {
	if unit == models.DistanceUnitMiles {
		return d.Miles()
	}
	return d.Yards()
}

// ResolveDiscount avalia cada faixa de forma independente sobre os
// agendamentos vizinhos (mesmo dia, com localização, pending/confirmed) e
// devolve o MAIOR percentual entre as faixas que casam — não a faixa de
// menor número nem a de menor distância. Faixas podem se sobrepor; erro de
// configuração favorece o consumidor. Retorna nil quando nenhuma faixa
// resolve (preço cheio).
func ResolveDiscount(
	candidate geo.Point,
	tiers []models.ProximityDiscountTier,
	nearby []models.Appointment,
) *DiscountQuote {

	var best *DiscountQuote

	for _, tier := range tiers {
		minM, maxM := tierBoundsMeters(tier)

		matched := 0
		nearest := geo.Meters(math.Inf(1))

		for _, ap := range nearby {
			if ap.Lat == nil || ap.Lng == nil {
				continue
			}
			if !Status(ap.Status).CountsForDiscount() {
				continue
			}

			d := geo.Distance(candidate, geo.Point{Lat: *ap.Lat, Lng: *ap.Lng})

			// Faixa semiaberta [min, max).
			if d < minM || d >= maxM {
				continue
			}

			matched++
			if d < nearest {
				nearest = d
			}
		}

		if matched == 0 {
			continue
		}

		count := matched
		if count > MaxDiscountCount {
			count = MaxDiscountCount
		}

		var pct float64
		found := false
		for _, row := range tier.Discounts {
			if row.AppointmentCount == count {
				pct = row.DiscountPercentage
				found = true
				break
			}
		}
		if !found {
			continue
		}

		if best == nil || pct > best.DiscountPercentage {
			best = &DiscountQuote{
				Tier:               tier.Tier,
				Distance:           distanceInUnit(nearest, tier.DistanceUnit),
				DistanceUnit:       tier.DistanceUnit,
				NearbyAppointments: count,
				DiscountPercentage: pct,
			}
		}
	}

	return best
}

// ApplyDiscount aplica o percentual e arredonda para 2 casas decimais.
func ApplyDiscount(price, percentage float64) float64 {
	final := price - price*(percentage/100)
	return math.Round(final*100) / 100
}
