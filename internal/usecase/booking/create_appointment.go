package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/viciniti/service-scheduler/internal/audit"
	"github.com/viciniti/service-scheduler/internal/cache"
	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/geo"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/models"
	"github.com/viciniti/service-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID uint

	// Consumidor autenticado OU contato de convidado (e-mail obrigatório).
	ConsumerID      uint
	ConsumerEmail   string
	ConsumerName    string
	ConsumerPhone   string
	ConsumerAddress string

	Start time.Time
	// Quando nil, End = Start + duração do serviço.
	End *time.Time

	Status   string
	Notes    string
	Location *geo.Point

	// Snapshot de preço; quando nil usa o preço atual do serviço.
	PriceOverride *float64
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	cache     cache.Cache
	audit     *audit.Dispatcher
	bufferMin int
}

func NewCreateAppointment(
	repo domain.Repository,
	c cache.Cache,
	dispatcher *audit.Dispatcher,
	bufferMin int,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		cache:     c,
		audit:     dispatcher,
		bufferMin: bufferMin,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	provider, err := uc.repo.GetProviderByID(ctx, svc.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	end := in.Start.Add(time.Duration(svc.DurationMin) * time.Minute)
	if in.End != nil {
		end = *in.End
	}
	if !end.After(in.Start) {
		return nil, httperr.ErrBusiness("invalid_time_range")
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		if !domain.ValidStatus(in.Status) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		status = domain.Status(in.Status)
	}

	consumer, err := uc.resolveConsumer(ctx, in)
	if err != nil {
		return nil, err
	}

	originalPrice := svc.Price
	if in.PriceOverride != nil {
		originalPrice = *in.PriceOverride
	}
	finalPrice := originalPrice

	var lat, lng *float64
	if in.Location != nil {
		lat = &in.Location.Lat
		lng = &in.Location.Lng

		quote, err := uc.resolveDiscount(ctx, provider, in.Start, *in.Location)
		if err != nil {
			return nil, err
		}
		if quote != nil {
			finalPrice = domain.ApplyDiscount(originalPrice, quote.DiscountPercentage)
		}
	}

	ap := &models.Appointment{
		ID:             uuid.NewString(),
		ServiceID:      svc.ID,
		ProviderID:     provider.ID,
		ConsumerID:     consumer.ID,
		StartTime:      in.Start,
		EndTime:        end,
		Status:         string(status),
		Lat:            lat,
		Lng:            lng,
		OriginalPrice:  originalPrice,
		DiscountAmount: originalPrice - finalPrice,
		FinalPrice:     finalPrice,
		Notes:          in.Notes,
	}

	// Checagem autoritativa: mesmo um horário nunca ofertado é aceito desde
	// que não conflite. A listagem de slots é apenas consultiva.
	conflicts, err := uc.repo.CreateAppointmentIfFree(ctx, ap, uc.bufferMin)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &domain.ConflictError{Appointments: conflicts}
	}

	_ = uc.cache.Delete(ctx, availabilityCacheKey(domain.AvailabilityInput{ServiceID: svc.ID}))

	uc.audit.Dispatch(audit.Event{
		ProviderID: provider.ID,
		UserID:     &consumer.ID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}

func (uc *CreateAppointment) resolveConsumer(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.User, error) {

	if in.ConsumerID != 0 {
		consumer, err := uc.repo.GetConsumerByID(ctx, in.ConsumerID)
		if err != nil {
			return nil, httperr.ErrBusiness("consumer_not_found")
		}
		return consumer, nil
	}

	if in.ConsumerEmail == "" {
		return nil, httperr.ErrBusiness("consumer_required")
	}

	return uc.repo.GetOrCreateConsumer(
		ctx,
		in.ConsumerEmail,
		in.ConsumerName,
		in.ConsumerPhone,
		in.ConsumerAddress,
	)
}

func (uc *CreateAppointment) resolveDiscount(
	ctx context.Context,
	provider *models.ServiceProvider,
	start time.Time,
	location geo.Point,
) (*domain.DiscountQuote, error) {

	tiers, err := uc.repo.ListDiscountTiers(ctx, provider.ID)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, nil
	}

	active, err := uc.repo.ListActiveAppointmentsForProvider(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(provider.Timezone)
	nearby := sameDayLocated(active, start, loc)

	return domain.ResolveDiscount(location, tiers, nearby), nil
}
