package booking

import (
	"time"

	"github.com/viciniti/service-scheduler/internal/models"
)

// sameDayLocated filtra os agendamentos do mesmo dia-calendário do
// candidato (no fuso do prestador) que têm localização. O filtro de status
// fica no resolvedor de desconto.
func sameDayLocated(
	apps []models.Appointment,
	day time.Time,
	loc *time.Location,
) []models.Appointment {

	y, m, d := day.In(loc).Date()

	var out []models.Appointment
	for _, ap := range apps {
		if ap.Lat == nil || ap.Lng == nil {
			continue
		}
		ay, am, ad := ap.StartTime.In(loc).Date()
		if ay == y && am == m && ad == d {
			out = append(out, ap)
		}
	}

	return out
}

func futureLocated(apps []models.Appointment, now time.Time) []models.Appointment {
	var out []models.Appointment
	for _, ap := range apps {
		if ap.Lat == nil || ap.Lng == nil {
			continue
		}
		if ap.StartTime.After(now) {
			out = append(out, ap)
		}
	}
	return out
}
