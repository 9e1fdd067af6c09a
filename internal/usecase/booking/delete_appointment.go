package booking

import (
	"context"

	"github.com/viciniti/service-scheduler/internal/audit"
	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
)

// Remoção administrativa. No fluxo normal agendamento não é apagado —
// cancelamento é mudança de status.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: dispatcher,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: ap.ProviderID,
		Action:     "appointment_deleted",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return nil
}
