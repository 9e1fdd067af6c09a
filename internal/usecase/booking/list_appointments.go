package booking

import (
	"context"
	"time"

	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/models"
	"github.com/viciniti/service-scheduler/internal/timezone"
)

type ListAppointmentsByDay struct {
	repo domain.Repository
}

func NewListAppointmentsByDay(repo domain.Repository) *ListAppointmentsByDay {
	return &ListAppointmentsByDay{repo: repo}
}

func (uc *ListAppointmentsByDay) Execute(
	ctx context.Context,
	providerID uint,
	date time.Time,
) ([]models.Appointment, error) {

	provider, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	loc := timezone.Location(provider.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	return uc.repo.ListAppointmentsForPeriod(ctx, providerID, start, end)
}
