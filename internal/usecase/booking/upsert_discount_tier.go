package booking

import (
	"context"

	"github.com/viciniti/service-scheduler/internal/audit"
	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/models"
)

type UpsertDiscountTierInput struct {
	ProviderID   uint
	Tier         int
	MinDistance  float64
	MaxDistance  float64
	DistanceUnit string
	// contagem de agendamentos próximos → percentual
	Discounts map[int]float64
}

type UpsertDiscountTier struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpsertDiscountTier(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *UpsertDiscountTier {
	return &UpsertDiscountTier{
		repo:  repo,
		audit: dispatcher,
	}
}

// Execute valida tudo antes de qualquer mutação.
func (uc *UpsertDiscountTier) Execute(
	ctx context.Context,
	in UpsertDiscountTierInput,
) error {

	if in.Tier < 1 || in.Tier > 4 {
		return httperr.ErrBusiness("invalid_tier")
	}
	if in.MinDistance < 0 || in.MinDistance >= in.MaxDistance {
		return httperr.ErrBusiness("invalid_tier_bounds")
	}
	if in.DistanceUnit != models.DistanceUnitYards && in.DistanceUnit != models.DistanceUnitMiles {
		return httperr.ErrBusiness("invalid_distance_unit")
	}
	for count, pct := range in.Discounts {
		if count < 1 || count > domain.MaxDiscountCount {
			return httperr.ErrBusiness("invalid_appointment_count")
		}
		if pct < 0 || pct > 100 {
			return httperr.ErrBusiness("invalid_percentage")
		}
	}

	if _, err := uc.repo.GetProviderByID(ctx, in.ProviderID); err != nil {
		return httperr.ErrBusiness("provider_not_found")
	}

	tier := &models.ProximityDiscountTier{
		ProviderID:   in.ProviderID,
		Tier:         in.Tier,
		MinDistance:  in.MinDistance,
		MaxDistance:  in.MaxDistance,
		DistanceUnit: in.DistanceUnit,
	}

	var discounts []models.ProximityDiscount
	for count, pct := range in.Discounts {
		discounts = append(discounts, models.ProximityDiscount{
			AppointmentCount:   count,
			DiscountPercentage: pct,
		})
	}

	if err := uc.repo.UpsertDiscountTier(ctx, tier, discounts); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		Action:     "discount_tier_upserted",
		Entity:     "proximity_discount_tier",
	})

	return nil
}
