package booking

import (
	"context"
	"time"

	"github.com/viciniti/service-scheduler/internal/audit"
	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/models"
)

type RescheduleInput struct {
	AppointmentID string
	// Campos nil mantêm o valor atual.
	Start *time.Time
	End   *time.Time
	Notes *string
}

type RescheduleAppointment struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	bufferMin int
}

func NewRescheduleAppointment(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
	bufferMin int,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:      repo,
		audit:     dispatcher,
		bufferMin: bufferMin,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	status := domain.Status(ap.Status)
	if status == domain.StatusCancelled || status == domain.StatusCompleted {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	// Sem mudança de horário não há o que re-checar.
	if in.Start == nil && in.End == nil {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
		return ap, nil
	}

	newStart := ap.StartTime
	newEnd := ap.EndTime
	if in.Start != nil {
		newStart = *in.Start
	}
	if in.End != nil {
		newEnd = *in.End
	}
	if !newEnd.After(newStart) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	// A própria identidade anterior do agendamento não conta como conflito.
	conflicts, err := uc.repo.RescheduleIfFree(ctx, ap, newStart, newEnd, uc.bufferMin)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &domain.ConflictError{Appointments: conflicts}
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: ap.ProviderID,
		UserID:     &ap.ConsumerID,
		Action:     "appointment_rescheduled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
