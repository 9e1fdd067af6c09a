package booking

import (
	"context"
	"time"

	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/geo"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/timezone"
)

type DiscountQuoteInput struct {
	ServiceID uint
	Location  geo.Point
	// Zero: cota contra todos os agendamentos futuros localizados.
	// Preenchida: apenas os do mesmo dia-calendário.
	Date time.Time
}

type DiscountQuoteOutput struct {
	Quote         *domain.DiscountQuote `json:"quote"`
	OriginalPrice float64               `json:"original_price"`
	FinalPrice    float64               `json:"final_price"`
}

type GetDiscountQuote struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetDiscountQuote(repo domain.Repository) *GetDiscountQuote {
	return &GetDiscountQuote{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *GetDiscountQuote) Execute(
	ctx context.Context,
	in DiscountQuoteInput,
) (*DiscountQuoteOutput, error) {

	svc, err := uc.repo.GetServiceByID(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	provider, err := uc.repo.GetProviderByID(ctx, svc.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("provider_not_found")
	}

	tiers, err := uc.repo.ListDiscountTiers(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	active, err := uc.repo.ListActiveAppointmentsForProvider(ctx, provider.ID)
	if err != nil {
		return nil, err
	}

	var eligible = active
	if in.Date.IsZero() {
		eligible = futureLocated(active, uc.now())
	} else {
		loc := timezone.Location(provider.Timezone)
		eligible = sameDayLocated(active, in.Date, loc)
	}

	out := &DiscountQuoteOutput{
		OriginalPrice: svc.Price,
		FinalPrice:    svc.Price,
	}

	if quote := domain.ResolveDiscount(in.Location, tiers, eligible); quote != nil {
		out.Quote = quote
		out.FinalPrice = domain.ApplyDiscount(svc.Price, quote.DiscountPercentage)
	}

	return out, nil
}
