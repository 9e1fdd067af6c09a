package booking

import (
	"context"
	"time"

	"github.com/viciniti/service-scheduler/internal/audit"
	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/models"
)

type WindowInput struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type SetProviderAvailability struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetProviderAvailability(
	repo domain.Repository,
	dispatcher *audit.Dispatcher,
) *SetProviderAvailability {
	return &SetProviderAvailability{
		repo:  repo,
		audit: dispatcher,
	}
}

// Execute substitui TODA a disponibilidade do prestador (delete + insert,
// nunca merge). Janelas malformadas são rejeitadas aqui, na escrita — o
// gerador de slots assume entrada válida.
func (uc *SetProviderAvailability) Execute(
	ctx context.Context,
	providerID uint,
	days map[string][]WindowInput,
) error {

	if _, err := uc.repo.GetProviderByID(ctx, providerID); err != nil {
		return httperr.ErrBusiness("provider_not_found")
	}

	var windows []models.AvailabilityWindow
	for dayKey, blocks := range days {
		if dayKey == "" {
			return httperr.ErrBusiness("invalid_day_key")
		}
		for _, block := range blocks {
			if !block.End.After(block.Start) {
				return httperr.ErrBusiness("invalid_window")
			}
			windows = append(windows, models.AvailabilityWindow{
				ProviderID: providerID,
				DayKey:     dayKey,
				StartTime:  block.Start,
				EndTime:    block.End,
			})
		}
	}

	if err := uc.repo.ReplaceWindows(ctx, providerID, windows); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "availability_replaced",
		Entity:     "availability_window",
	})

	return nil
}
