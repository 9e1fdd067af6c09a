package booking

import "github.com/viciniti/service-scheduler/internal/models"

// ConflictError carrega até 3 agendamentos conflitantes para o chamador
// oferecer horários alternativos. Recuperável: o usuário escolhe outro
// horário.
type ConflictError struct {
	Appointments []models.Appointment
}

func (e *ConflictError) Error() string {
	return "time_conflict"
}
