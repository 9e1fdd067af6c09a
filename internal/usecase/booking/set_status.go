package booking

import (
	"context"

	"github.com/viciniti/service-scheduler/internal/audit"
	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/models"
	"github.com/viciniti/service-scheduler/internal/timezone"
)

type SetAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:  repo,
		audit: dispatcher,
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	appointmentID string,
	newStatus string,
) (*models.Appointment, error) {

	if !domain.ValidStatus(newStatus) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	to := domain.Status(newStatus)
	if err := domain.CanTransition(domain.Status(ap.Status), to); err != nil {
		return nil, err
	}

	provider, err := uc.repo.GetProviderByID(ctx, ap.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	now := timezone.NowIn(provider.Timezone)

	ap.Status = string(to)
	switch to {
	case domain.StatusCancelled:
		ap.CancelledAt = &now
	case domain.StatusCompleted:
		ap.CompletedAt = &now
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: ap.ProviderID,
		UserID:     &ap.ConsumerID,
		Action:     "appointment_status_" + newStatus,
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
