package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viciniti/service-scheduler/internal/cache"
	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/models"
	"github.com/viciniti/service-scheduler/internal/timezone"
)

// A listagem é consultiva e tolera leitura defasada; a checagem na hora do
// commit é a fonte da verdade. Por isso o cache curto aqui é seguro.
const availabilityCacheTTL = 60 * time.Second

type GetAvailability struct {
	repo      domain.Repository
	cache     cache.Cache
	bufferMin int
}

func NewGetAvailability(
	repo domain.Repository,
	c cache.Cache,
	bufferMin int,
) *GetAvailability {
	return &GetAvailability{
		repo:      repo,
		cache:     c,
		bufferMin: bufferMin,
	}
}

func availabilityCacheKey(in domain.AvailabilityInput) string {
	if in.Consumer == nil {
		return fmt.Sprintf("availability:s%d", in.ServiceID)
	}
	return fmt.Sprintf(
		"availability:s%d:%.4f,%.4f",
		in.ServiceID,
		in.Consumer.Lat,
		in.Consumer.Lng,
	)
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (domain.DayAvailability, error) {

	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	key := availabilityCacheKey(in)
	if raw, ok, err := uc.cache.Get(ctx, key); err == nil && ok {
		var cached domain.DayAvailability
		if json.Unmarshal(raw, &cached) == nil {
			return cached, nil
		}
	}

	provider, err := uc.repo.GetProviderByID(ctx, svc.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	windows, err := uc.repo.ListWindowsForProvider(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	// Conflito é por prestador, não por serviço: uma reserva do serviço A
	// bloqueia os slots do serviço B do mesmo prestador.
	active, err := uc.repo.ListActiveAppointmentsForProvider(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	var tiers []models.ProximityDiscountTier
	if in.Consumer != nil {
		tiers, err = uc.repo.ListDiscountTiers(ctx, provider.ID)
		if err != nil {
			return nil, err
		}
	}

	loc := timezone.Location(provider.Timezone)
	out := domain.DayAvailability{}

	for _, w := range windows {
		if _, ok := out[w.DayKey]; !ok {
			out[w.DayKey] = []domain.PricedSlot{}
		}

		slots := domain.GenerateSlots(w, svc.DurationMin, uc.bufferMin)

		for i, slot := range slots {
			candidate := domain.Interval{Start: slot.Start, End: slot.End}
			if domain.HasConflict(candidate, active, uc.bufferMin, "") {
				continue
			}

			priced := domain.PricedSlot{
				ID:            fmt.Sprintf("slot-%s-%d", w.DayKey, i),
				Start:         slot.Start,
				End:           slot.End,
				OriginalPrice: svc.Price,
				FinalPrice:    svc.Price,
			}

			if in.Consumer != nil {
				nearby := sameDayLocated(active, slot.Start, loc)
				if quote := domain.ResolveDiscount(*in.Consumer, tiers, nearby); quote != nil {
					priced.DiscountPercentage = quote.DiscountPercentage
					priced.NearbyAppointments = quote.NearbyAppointments
					priced.FinalPrice = domain.ApplyDiscount(svc.Price, quote.DiscountPercentage)
				}
			}

			out[w.DayKey] = append(out[w.DayKey], priced)
		}
	}

	if raw, err := json.Marshal(out); err == nil {
		_ = uc.cache.Set(ctx, key, raw, availabilityCacheTTL)
	}

	return out, nil
}
