package booking

import (
	"time"

	"github.com/viciniti/service-scheduler/internal/models"
)

// Intervalo mínimo entre dois agendamentos ativos do mesmo prestador.
const DefaultBufferMinutes = 15

type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// GenerateSlots expande um bloco de disponibilidade em slots candidatos de
// duração fixa. O buffer entra apenas ENTRE slots, nunca antes do primeiro.
// Nenhum slot ultrapassa o fim do bloco; se o serviço não cabe, retorna vazio.
func GenerateSlots(
	window models.AvailabilityWindow,
	serviceDurationMin int,
	bufferMin int,
) []Slot {

	if serviceDurationMin <= 0 {
		return nil
	}

	duration := time.Duration(serviceDurationMin) * time.Minute
	buffer := time.Duration(bufferMin) * time.Minute

	var slots []Slot

	for cur := window.StartTime; ; cur = cur.Add(duration + buffer) {
		end := cur.Add(duration)
		if end.After(window.EndTime) {
			break
		}
		slots = append(slots, Slot{Start: cur, End: end})
	}

	return slots
}
