package geo

import "math"

// ===============================
// Units
// ===============================

type Meters float64

const (
	earthRadiusMeters = 6371000.0

	metersPerYard = 0.9144
	metersPerMile = 1609.34
)

func YardsToMeters(yards float64) Meters {
	return Meters(yards * metersPerYard)
}

func MilesToMeters(miles float64) Meters {
	return Meters(miles * metersPerMile)
}

func (m Meters) Yards() float64 {
	return float64(m) / metersPerYard
}

func (m Meters) Miles() float64 {
	return float64(m) / metersPerMile
}

// ===============================
// Distance
// ===============================

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance retorna a distância de grande círculo entre dois pontos (haversine).
func Distance(a, b Point) Meters {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return Meters(earthRadiusMeters * c)
}
