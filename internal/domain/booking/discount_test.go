package booking

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viciniti/service-scheduler/internal/geo"
	"github.com/viciniti/service-scheduler/internal/models"
)

var origin = geo.Point{Lat: 0, Lng: 0}

// pointAtMeters desloca sobre o meridiano: a distância haversine volta
// exatamente em metros.
func pointAtMeters(meters float64) geo.Point {
	return geo.Point{Lat: meters / 6371000.0 * 180 / math.Pi, Lng: 0}
}

func locatedAppointment(id string, p geo.Point, status Status) models.Appointment {
	return models.Appointment{
		ID:     id,
		Lat:    &p.Lat,
		Lng:    &p.Lng,
		Status: string(status),
	}
}

func yardTier(tier int, minYd, maxYd float64, discounts map[int]float64) models.ProximityDiscountTier {
	t := models.ProximityDiscountTier{
		Tier:         tier,
		MinDistance:  minYd,
		MaxDistance:  maxYd,
		DistanceUnit: models.DistanceUnitYards,
	}
	for count, pct := range discounts {
		t.Discounts = append(t.Discounts, models.ProximityDiscount{
			AppointmentCount:   count,
			DiscountPercentage: pct,
		})
	}
	return t
}

func TestResolveDiscountBestPercentageWins(t *testing.T) {
	// Faixas sobrepostas: um agendamento a 20 jardas casa nas duas; vence o
	// maior percentual (15%), não a faixa de menor número.
	tiers := []models.ProximityDiscountTier{
		yardTier(1, 0, 50, map[int]float64{1: 10}),
		yardTier(2, 0, 30, map[int]float64{1: 15}),
	}
	nearby := []models.Appointment{
		locatedAppointment("a1", pointAtMeters(float64(geo.YardsToMeters(20))), StatusConfirmed),
	}

	quote := ResolveDiscount(origin, tiers, nearby)
	require.NotNil(t, quote)
	assert.Equal(t, 2, quote.Tier)
	assert.Equal(t, 15.0, quote.DiscountPercentage)
	assert.Equal(t, 1, quote.NearbyAppointments)
}

func TestResolveDiscountClampsCountAtFive(t *testing.T) {
	tiers := []models.ProximityDiscountTier{
		yardTier(1, 0, 100, map[int]float64{5: 25}),
	}

	var nearby []models.Appointment
	for i := 0; i < 7; i++ {
		nearby = append(nearby, locatedAppointment("a", pointAtMeters(10), StatusPending))
	}

	quote := ResolveDiscount(origin, tiers, nearby)
	require.NotNil(t, quote)
	assert.Equal(t, 5, quote.NearbyAppointments)
	assert.Equal(t, 25.0, quote.DiscountPercentage)
}

func TestResolveDiscountHalfOpenUpperBound(t *testing.T) {
	// Faixa semiaberta [0, 50) jardas: 50 jardas = 45.72 m fica fora.
	tiers := []models.ProximityDiscountTier{
		yardTier(1, 0, 50, map[int]float64{1: 10}),
	}

	inside := []models.Appointment{
		locatedAppointment("a1", pointAtMeters(45.70), StatusConfirmed),
	}
	assert.NotNil(t, ResolveDiscount(origin, tiers, inside))

	atBound := []models.Appointment{
		locatedAppointment("a1", pointAtMeters(45.7201), StatusConfirmed),
	}
	assert.Nil(t, ResolveDiscount(origin, tiers, atBound))
}

func TestResolveDiscountNoRowForCount(t *testing.T) {
	// Dois vizinhos mas só existe linha para count=1: faixa não resolve.
	tiers := []models.ProximityDiscountTier{
		yardTier(1, 0, 100, map[int]float64{1: 10}),
	}
	nearby := []models.Appointment{
		locatedAppointment("a1", pointAtMeters(10), StatusConfirmed),
		locatedAppointment("a2", pointAtMeters(20), StatusConfirmed),
	}

	assert.Nil(t, ResolveDiscount(origin, tiers, nearby))
}

func TestResolveDiscountIgnoresNonCountingStatuses(t *testing.T) {
	tiers := []models.ProximityDiscountTier{
		yardTier(1, 0, 100, map[int]float64{1: 10, 2: 20}),
	}
	nearby := []models.Appointment{
		locatedAppointment("a1", pointAtMeters(10), StatusConfirmed),
		locatedAppointment("a2", pointAtMeters(15), StatusCancelled),
		locatedAppointment("a3", pointAtMeters(20), StatusCompleted),
	}

	quote := ResolveDiscount(origin, tiers, nearby)
	require.NotNil(t, quote)
	assert.Equal(t, 1, quote.NearbyAppointments)
	assert.Equal(t, 10.0, quote.DiscountPercentage)
}

func TestResolveDiscountEmptyNeighborhood(t *testing.T) {
	tiers := []models.ProximityDiscountTier{
		yardTier(1, 0, 100, map[int]float64{1: 10}),
	}

	assert.Nil(t, ResolveDiscount(origin, tiers, nil))
}

func TestResolveDiscountMilesTier(t *testing.T) {
	// Faixa em milhas: [0, 1) mi; vizinho a ~800 m casa.
	tiers := []models.ProximityDiscountTier{
		{
			Tier:         1,
			MinDistance:  0,
			MaxDistance:  1,
			DistanceUnit: models.DistanceUnitMiles,
			Discounts: []models.ProximityDiscount{
				{AppointmentCount: 1, DiscountPercentage: 12.5},
			},
		},
	}
	nearby := []models.Appointment{
		locatedAppointment("a1", pointAtMeters(800), StatusConfirmed),
	}

	quote := ResolveDiscount(origin, tiers, nearby)
	require.NotNil(t, quote)
	assert.Equal(t, models.DistanceUnitMiles, quote.DistanceUnit)
	assert.InDelta(t, 800.0/1609.34, quote.Distance, 1e-6)
}

func TestResolveDiscountIdempotent(t *testing.T) {
	tiers := []models.ProximityDiscountTier{
		yardTier(1, 0, 50, map[int]float64{1: 10}),
		yardTier(2, 0, 30, map[int]float64{1: 15}),
	}
	nearby := []models.Appointment{
		locatedAppointment("a1", pointAtMeters(18), StatusConfirmed),
	}

	first := ResolveDiscount(origin, tiers, nearby)
	second := ResolveDiscount(origin, tiers, nearby)

	require.NotNil(t, first)
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestApplyDiscountRoundsToTwoDecimals(t *testing.T) {
	assert.Equal(t, 85.0, ApplyDiscount(100, 15))
	assert.Equal(t, 33.33, ApplyDiscount(49.99, 33.33))
	assert.Equal(t, 100.0, ApplyDiscount(100, 0))
	assert.Equal(t, 0.0, ApplyDiscount(100, 100))
}
