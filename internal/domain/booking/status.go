package booking

import "github.com/viciniti/service-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsActive indica se o agendamento bloqueia horário.
// Cancelado nunca bloqueia nem conta para desconto.
func (s Status) IsActive() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// CountsForDiscount indica se o agendamento entra na contagem de
// proximidade (apenas pending e confirmed).
func (s Status) CountsForDiscount() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transições
// ===============================

// cancelled e completed são terminais.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if to == allowed {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_transition")
}
