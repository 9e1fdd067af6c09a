package booking

import (
	"sort"
	"time"

	"github.com/viciniti/service-scheduler/internal/models"
)

const maxReportedConflicts = 3

type Interval struct {
	Start time.Time
	End   time.Time
}

// overlapsBuffered compara o candidato contra o intervalo existente
// expandido pelo buffer dos dois lados. O buffer vira a folga mínima entre
// dois agendamentos ativos: um candidato começando buffer-1 minutos após o
// fim de um existente conflita; começando exatamente buffer minutos depois,
// não.
func overlapsBuffered(candidate Interval, ap models.Appointment, buffer time.Duration) bool {
	bufferedStart := ap.StartTime.Add(-buffer)
	bufferedEnd := ap.EndTime.Add(buffer)
	return candidate.Start.Before(bufferedEnd) && candidate.End.After(bufferedStart)
}

// FindConflicts retorna até 3 agendamentos ativos que conflitam com o
// candidato, ordenados do mais cedo para o mais tarde. Cancelados nunca
// conflitam. excludeID ignora a identidade anterior em remarcações.
func FindConflicts(
	candidate Interval,
	existing []models.Appointment,
	bufferMin int,
	excludeID string,
) []models.Appointment {

	buffer := time.Duration(bufferMin) * time.Minute

	var conflicts []models.Appointment
	for _, ap := range existing {
		if excludeID != "" && ap.ID == excludeID {
			continue
		}
		if !Status(ap.Status).IsActive() {
			continue
		}
		if overlapsBuffered(candidate, ap, buffer) {
			conflicts = append(conflicts, ap)
		}
	}

	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].StartTime.Before(conflicts[j].StartTime)
	})

	if len(conflicts) > maxReportedConflicts {
		conflicts = conflicts[:maxReportedConflicts]
	}

	return conflicts
}

func HasConflict(
	candidate Interval,
	existing []models.Appointment,
	bufferMin int,
	excludeID string,
) bool {
	return len(FindConflicts(candidate, existing, bufferMin, excludeID)) > 0
}
