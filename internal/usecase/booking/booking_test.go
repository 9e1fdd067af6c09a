package booking

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/viciniti/service-scheduler/internal/audit"
	"github.com/viciniti/service-scheduler/internal/cache"
	dbpkg "github.com/viciniti/service-scheduler/internal/db"
	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/geo"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/infra/repository"
	"github.com/viciniti/service-scheduler/internal/models"
)

// ======================================================
// Harness
// ======================================================

type fixture struct {
	db       *gorm.DB
	repo     *repository.BookingGormRepository
	audit    *audit.Dispatcher
	provider models.ServiceProvider
	service  models.Service
	consumer models.User
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())),
		&gorm.Config{},
	)
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// sqlite em memória: uma conexão evita SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	owner := models.User{
		Name:     "Dono",
		Email:    fmt.Sprintf("dono-%s@example.com", t.Name()),
		UserType: "provider",
	}
	require.NoError(t, gdb.Create(&owner).Error)

	provider := models.ServiceProvider{
		UserID:       owner.ID,
		BusinessName: "Barbearia Central",
		Timezone:     "UTC",
	}
	require.NoError(t, gdb.Create(&provider).Error)

	service := models.Service{
		ProviderID:  provider.ID,
		Name:        "Corte",
		Price:       100,
		DurationMin: 60,
		Active:      true,
	}
	require.NoError(t, gdb.Create(&service).Error)

	consumer := models.User{
		Name:     "Cliente",
		Email:    fmt.Sprintf("cliente-%s@example.com", t.Name()),
		UserType: "consumer",
	}
	require.NoError(t, gdb.Create(&consumer).Error)

	return &fixture{
		db:       gdb,
		repo:     repository.NewBookingGormRepository(gdb),
		audit:    audit.NewDispatcher(audit.New(gdb)),
		provider: provider,
		service:  service,
		consumer: consumer,
	}
}

func (f *fixture) create() *CreateAppointment {
	return NewCreateAppointment(f.repo, cache.NewNoop(), f.audit, 15)
}

func ts(clock string) time.Time {
	v, err := time.Parse("2006-01-02 15:04", "2026-09-10 "+clock)
	if err != nil {
		panic(err)
	}
	return v
}

func pointAt(meters float64) geo.Point {
	return geo.Point{Lat: meters / 6371000.0 * 180 / math.Pi, Lng: 0}
}

// ======================================================
// Create
// ======================================================

func TestCreateAppointmentPersistsPriceSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
	})
	require.NoError(t, err)

	// End omitido: início + duração do serviço.
	assert.Equal(t, ts("11:00"), ap.EndTime)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, 100.0, ap.OriginalPrice)
	assert.Equal(t, 100.0, ap.FinalPrice)
	assert.Equal(t, 0.0, ap.DiscountAmount)

	stored, err := f.repo.GetAppointmentByID(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, f.provider.ID, stored.ProviderID)
	assert.Equal(t, f.consumer.ID, stored.ConsumerID)
	assert.Equal(t, 100.0, stored.FinalPrice)
}

func TestCreateAppointmentBufferedConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := f.create()

	_, err := uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
	})
	require.NoError(t, err)

	// 14 min depois do fim do existente: dentro da folga.
	_, err = uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("11:14"),
	})
	var ce *domain.ConflictError
	require.ErrorAs(t, err, &ce)
	require.Len(t, ce.Appointments, 1)
	assert.Equal(t, ts("10:00"), ce.Appointments[0].StartTime)

	// Exatamente a folga de distância: aceito, mesmo sem slot ofertado.
	_, err = uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("11:15"),
	})
	assert.NoError(t, err)
}

func TestCreateAppointmentGuestConsumer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := f.create()

	first, err := uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:     f.service.ID,
		ConsumerEmail: "convidado@example.com",
		ConsumerName:  "Convidado",
		Start:         ts("09:00"),
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ConsumerID)

	// Mesmo e-mail reaproveita o consumidor, não cria outro.
	second, err := uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:     f.service.ID,
		ConsumerEmail: "convidado@example.com",
		Start:         ts("14:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ConsumerID, second.ConsumerID)

	// Sem identidade nem e-mail não há agendamento.
	_, err = uc.Execute(ctx, CreateAppointmentInput{
		ServiceID: f.service.ID,
		Start:     ts("16:00"),
	})
	assert.True(t, httperr.IsBusiness(err, "consumer_required"))
}

func TestCreateAppointmentInvalidTimeRange(t *testing.T) {
	f := newFixture(t)

	end := ts("10:00")
	_, err := f.create().Execute(context.Background(), CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
		End:        &end,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_time_range"))
}

func TestConcurrentDoubleBooking(t *testing.T) {
	f := newFixture(t)
	uc := f.create()

	other := models.User{
		Name:  "Cliente 2",
		Email: fmt.Sprintf("cliente2-%s@example.com", t.Name()),
	}
	require.NoError(t, f.db.Create(&other).Error)

	consumers := []uint{f.consumer.ID, other.ID}
	errs := make([]error, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), CreateAppointmentInput{
				ServiceID:  f.service.ID,
				ConsumerID: consumers[i],
				Start:      ts("10:00"),
			})
		}(i)
	}
	wg.Wait()

	// Exatamente um vence; o outro recebe o conflito.
	var ok, conflicted int
	for _, err := range errs {
		var ce *domain.ConflictError
		switch {
		case err == nil:
			ok++
		case assert.ErrorAs(t, err, &ce):
			conflicted++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicted)
}

// ======================================================
// Reschedule
// ======================================================

func TestRescheduleExcludesOwnInterval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := f.create()

	ap, err := uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
	})
	require.NoError(t, err)

	// Sobrepõe apenas a si mesmo: permitido.
	resched := NewRescheduleAppointment(f.repo, f.audit, 15)
	start := ts("10:30")
	end := ts("11:30")
	moved, err := resched.Execute(ctx, RescheduleInput{
		AppointmentID: ap.ID,
		Start:         &start,
		End:           &end,
	})
	require.NoError(t, err)
	assert.Equal(t, ts("10:30"), moved.StartTime)

	_, err = uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("13:00"),
	})
	require.NoError(t, err)

	// Agora colide com o segundo agendamento.
	start = ts("13:30")
	end = ts("14:30")
	_, err = resched.Execute(ctx, RescheduleInput{
		AppointmentID: ap.ID,
		Start:         &start,
		End:           &end,
	})
	var ce *domain.ConflictError
	assert.ErrorAs(t, err, &ce)
}

func TestRescheduleRejectedForTerminalStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
	})
	require.NoError(t, err)

	_, err = NewSetAppointmentStatus(f.repo, f.audit).
		Execute(ctx, ap.ID, string(domain.StatusCancelled))
	require.NoError(t, err)

	start := ts("15:00")
	_, err = NewRescheduleAppointment(f.repo, f.audit, 15).Execute(ctx, RescheduleInput{
		AppointmentID: ap.ID,
		Start:         &start,
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestRescheduleNotesOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
	})
	require.NoError(t, err)

	notes := "portão azul"
	updated, err := NewRescheduleAppointment(f.repo, f.audit, 15).Execute(ctx, RescheduleInput{
		AppointmentID: ap.ID,
		Notes:         &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, ap.StartTime, updated.StartTime)
}

// ======================================================
// Status
// ======================================================

func TestSetStatusLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewSetAppointmentStatus(f.repo, f.audit)

	ap, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
	})
	require.NoError(t, err)

	confirmed, err := uc.Execute(ctx, ap.ID, string(domain.StatusConfirmed))
	require.NoError(t, err)
	assert.Nil(t, confirmed.CancelledAt)
	assert.Nil(t, confirmed.CompletedAt)

	completed, err := uc.Execute(ctx, ap.ID, string(domain.StatusCompleted))
	require.NoError(t, err)
	require.NotNil(t, completed.CompletedAt)

	// Estado terminal.
	_, err = uc.Execute(ctx, ap.ID, string(domain.StatusPending))
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))

	_, err = uc.Execute(ctx, ap.ID, "scheduled")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestCancelRecordsTimestamp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
	})
	require.NoError(t, err)

	cancelled, err := NewSetAppointmentStatus(f.repo, f.audit).
		Execute(ctx, ap.ID, string(domain.StatusCancelled))
	require.NoError(t, err)
	require.NotNil(t, cancelled.CancelledAt)
}

// ======================================================
// Availability
// ======================================================

func TestSetProviderAvailabilityFullReplace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewSetProviderAvailability(f.repo, f.audit)

	err := uc.Execute(ctx, f.provider.ID, map[string][]WindowInput{
		"2026-09-10": {{Start: ts("09:00"), End: ts("12:00")}},
		"2026-09-11": {{Start: ts("14:00"), End: ts("18:00")}},
	})
	require.NoError(t, err)

	windows, err := f.repo.ListWindowsForProvider(ctx, f.provider.ID)
	require.NoError(t, err)
	require.Len(t, windows, 2)

	// Substituição total: o novo conjunto apaga o anterior.
	err = uc.Execute(ctx, f.provider.ID, map[string][]WindowInput{
		"2026-09-12": {{Start: ts("08:00"), End: ts("10:00")}},
	})
	require.NoError(t, err)

	windows, err = f.repo.ListWindowsForProvider(ctx, f.provider.ID)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "2026-09-12", windows[0].DayKey)
}

func TestSetProviderAvailabilityRejectsBeforeMutating(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewSetProviderAvailability(f.repo, f.audit)

	require.NoError(t, uc.Execute(ctx, f.provider.ID, map[string][]WindowInput{
		"2026-09-10": {{Start: ts("09:00"), End: ts("12:00")}},
	}))

	err := uc.Execute(ctx, f.provider.ID, map[string][]WindowInput{
		"2026-09-11": {{Start: ts("12:00"), End: ts("09:00")}},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_window"))

	// Conjunto anterior intocado.
	windows, err := f.repo.ListWindowsForProvider(ctx, f.provider.ID)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, "2026-09-10", windows[0].DayKey)
}

func TestGetAvailabilityEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, NewSetProviderAvailability(f.repo, f.audit).
		Execute(ctx, f.provider.ID, map[string][]WindowInput{
			"2026-09-10": {{Start: ts("09:00"), End: ts("12:00")}},
		}))

	avail := NewGetAvailability(f.repo, cache.NewNoop(), 15)

	// Janela 09:00–12:00, serviço de 60 min, folga 15: dois slots.
	out, err := avail.Execute(ctx, domain.AvailabilityInput{ServiceID: f.service.ID})
	require.NoError(t, err)
	require.Len(t, out["2026-09-10"], 2)
	assert.Equal(t, "slot-2026-09-10-0", out["2026-09-10"][0].ID)
	assert.Equal(t, 100.0, out["2026-09-10"][0].FinalPrice)

	// Reservar o segundo slot o remove da oferta.
	ap, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:15"),
	})
	require.NoError(t, err)

	out, err = avail.Execute(ctx, domain.AvailabilityInput{ServiceID: f.service.ID})
	require.NoError(t, err)
	require.Len(t, out["2026-09-10"], 1)
	assert.Equal(t, ts("09:00"), out["2026-09-10"][0].Start)

	// Cancelado deixa de bloquear.
	_, err = NewSetAppointmentStatus(f.repo, f.audit).
		Execute(ctx, ap.ID, string(domain.StatusCancelled))
	require.NoError(t, err)

	out, err = avail.Execute(ctx, domain.AvailabilityInput{ServiceID: f.service.ID})
	require.NoError(t, err)
	assert.Len(t, out["2026-09-10"], 2)
}

func TestGetAvailabilityAnnotatesDiscount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, NewSetProviderAvailability(f.repo, f.audit).
		Execute(ctx, f.provider.ID, map[string][]WindowInput{
			"2026-09-10": {{Start: ts("09:00"), End: ts("12:00")}},
		}))

	require.NoError(t, NewUpsertDiscountTier(f.repo, f.audit).
		Execute(ctx, UpsertDiscountTierInput{
			ProviderID:   f.provider.ID,
			Tier:         1,
			MinDistance:  0,
			MaxDistance:  50,
			DistanceUnit: models.DistanceUnitYards,
			Discounts:    map[int]float64{1: 10},
		}))

	// Agendamento localizado no mesmo dia alimenta a contagem de vizinhança.
	loc := pointAt(10)
	_, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:15"),
		Location:   &loc,
	})
	require.NoError(t, err)

	consumer := geo.Point{Lat: 0, Lng: 0}
	out, err := NewGetAvailability(f.repo, cache.NewNoop(), 15).
		Execute(ctx, domain.AvailabilityInput{
			ServiceID: f.service.ID,
			Consumer:  &consumer,
		})
	require.NoError(t, err)

	require.Len(t, out["2026-09-10"], 1)
	slot := out["2026-09-10"][0]
	assert.Equal(t, 10.0, slot.DiscountPercentage)
	assert.Equal(t, 1, slot.NearbyAppointments)
	assert.Equal(t, 100.0, slot.OriginalPrice)
	assert.Equal(t, 90.0, slot.FinalPrice)
}

func TestGetAvailabilityKeepsEmptyDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Janela curta demais para o serviço: o dia aparece vazio, não some.
	require.NoError(t, NewSetProviderAvailability(f.repo, f.audit).
		Execute(ctx, f.provider.ID, map[string][]WindowInput{
			"2026-09-10": {{Start: ts("09:00"), End: ts("09:30")}},
		}))

	out, err := NewGetAvailability(f.repo, cache.NewNoop(), 15).
		Execute(ctx, domain.AvailabilityInput{ServiceID: f.service.ID})
	require.NoError(t, err)

	slots, ok := out["2026-09-10"]
	require.True(t, ok)
	assert.Empty(t, slots)
}

// ======================================================
// Discounts
// ======================================================

func TestUpsertDiscountTierValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewUpsertDiscountTier(f.repo, f.audit)

	base := UpsertDiscountTierInput{
		ProviderID:   f.provider.ID,
		Tier:         1,
		MinDistance:  0,
		MaxDistance:  50,
		DistanceUnit: models.DistanceUnitYards,
		Discounts:    map[int]float64{1: 10},
	}

	in := base
	in.Tier = 0
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, in), "invalid_tier"))

	in = base
	in.MinDistance, in.MaxDistance = 50, 50
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, in), "invalid_tier_bounds"))

	in = base
	in.DistanceUnit = "meters"
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, in), "invalid_distance_unit"))

	in = base
	in.Discounts = map[int]float64{6: 10}
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, in), "invalid_appointment_count"))

	in = base
	in.Discounts = map[int]float64{1: 150}
	assert.True(t, httperr.IsBusiness(uc.Execute(ctx, in), "invalid_percentage"))

	// Nada foi gravado.
	tiers, err := f.repo.ListDiscountTiers(ctx, f.provider.ID)
	require.NoError(t, err)
	assert.Empty(t, tiers)
}

func TestUpsertDiscountTierReplacesRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewUpsertDiscountTier(f.repo, f.audit)

	require.NoError(t, uc.Execute(ctx, UpsertDiscountTierInput{
		ProviderID:   f.provider.ID,
		Tier:         1,
		MinDistance:  0,
		MaxDistance:  50,
		DistanceUnit: models.DistanceUnitYards,
		Discounts:    map[int]float64{1: 10, 2: 20},
	}))

	// Mesmo tier: atualiza limites e troca as linhas inteiras.
	require.NoError(t, uc.Execute(ctx, UpsertDiscountTierInput{
		ProviderID:   f.provider.ID,
		Tier:         1,
		MinDistance:  0,
		MaxDistance:  100,
		DistanceUnit: models.DistanceUnitYards,
		Discounts:    map[int]float64{3: 30},
	}))

	tiers, err := f.repo.ListDiscountTiers(ctx, f.provider.ID)
	require.NoError(t, err)
	require.Len(t, tiers, 1)
	assert.Equal(t, 100.0, tiers[0].MaxDistance)
	require.Len(t, tiers[0].Discounts, 1)
	assert.Equal(t, 3, tiers[0].Discounts[0].AppointmentCount)
	assert.Equal(t, 30.0, tiers[0].Discounts[0].DiscountPercentage)
}

func TestGetDiscountQuote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, NewUpsertDiscountTier(f.repo, f.audit).
		Execute(ctx, UpsertDiscountTierInput{
			ProviderID:   f.provider.ID,
			Tier:         1,
			MinDistance:  0,
			MaxDistance:  50,
			DistanceUnit: models.DistanceUnitYards,
			Discounts:    map[int]float64{1: 10},
		}))

	loc := pointAt(10)
	_, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
		Location:   &loc,
	})
	require.NoError(t, err)

	uc := NewGetDiscountQuote(f.repo)

	out, err := uc.Execute(ctx, DiscountQuoteInput{
		ServiceID: f.service.ID,
		Location:  geo.Point{Lat: 0, Lng: 0},
		Date:      ts("00:00"),
	})
	require.NoError(t, err)
	require.NotNil(t, out.Quote)
	assert.Equal(t, 10.0, out.Quote.DiscountPercentage)
	assert.Equal(t, 100.0, out.OriginalPrice)
	assert.Equal(t, 90.0, out.FinalPrice)

	// Longe de qualquer faixa: preço cheio, sem cota.
	out, err = uc.Execute(ctx, DiscountQuoteInput{
		ServiceID: f.service.ID,
		Location:  pointAt(5000),
		Date:      ts("00:00"),
	})
	require.NoError(t, err)
	assert.Nil(t, out.Quote)
	assert.Equal(t, out.OriginalPrice, out.FinalPrice)
}

// ======================================================
// Listagem / remoção
// ======================================================

func TestListAppointmentsByDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := f.create()

	_, err := uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("14:00"),
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("09:00"),
	})
	require.NoError(t, err)

	// Dia seguinte: fora da janela consultada.
	_, err = uc.Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("09:00").Add(24 * time.Hour),
	})
	require.NoError(t, err)

	apps, err := NewListAppointmentsByDay(f.repo).
		Execute(ctx, f.provider.ID, ts("00:00"))
	require.NoError(t, err)

	require.Len(t, apps, 2)
	assert.Equal(t, ts("09:00"), apps[0].StartTime)
	assert.Equal(t, ts("14:00"), apps[1].StartTime)
}

func TestDeleteAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap, err := f.create().Execute(ctx, CreateAppointmentInput{
		ServiceID:  f.service.ID,
		ConsumerID: f.consumer.ID,
		Start:      ts("10:00"),
	})
	require.NoError(t, err)

	uc := NewDeleteAppointment(f.repo, f.audit)
	require.NoError(t, uc.Execute(ctx, ap.ID))

	_, err = f.repo.GetAppointmentByID(ctx, ap.ID)
	assert.Error(t, err)

	err = uc.Execute(ctx, ap.ID)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
