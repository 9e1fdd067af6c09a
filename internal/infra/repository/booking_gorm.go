package repository

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/models"
)

// Classe dos advisory locks de agendamento (primeiro argumento do
// pg_advisory_xact_lock de dois inteiros).
const bookingLockClass = 7401

type BookingGormRepository struct {
	db *gorm.DB

	// Fallback para dialetos sem advisory lock (sqlite nos testes):
	// serializa check+insert por prestador no processo.
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{
		db:    db,
		locks: make(map[uint]*sync.Mutex),
	}
}

// --------------------------------------------------
// Provider / Service
// --------------------------------------------------

func (r *BookingGormRepository) GetProviderByID(
	ctx context.Context,
	id uint,
) (*models.ServiceProvider, error) {

	var provider models.ServiceProvider
	if err := r.db.WithContext(ctx).First(&provider, id).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (r *BookingGormRepository) GetServiceByID(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Consumer
// --------------------------------------------------

func (r *BookingGormRepository) GetConsumerByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetOrCreateConsumer(
	ctx context.Context,
	email string,
	name string,
	phone string,
	address string,
) (*models.User, error) {

	var user models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error

	if err == nil {
		return &user, nil
	}

	user = models.User{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Address:  address,
		UserType: "consumer",
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListWindowsForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.AvailabilityWindow, error) {

	var windows []models.AvailabilityWindow
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("day_key ASC, start_time ASC").
		Find(&windows).Error; err != nil {
		return nil, err
	}

	return windows, nil
}

// ReplaceWindows implementa a semântica de substituição total: apaga tudo
// do prestador e insere o novo conjunto, na mesma transação.
func (r *BookingGormRepository) ReplaceWindows(
	ctx context.Context,
	providerID uint,
	windows []models.AvailabilityWindow,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("provider_id = ?", providerID).
			Delete(&models.AvailabilityWindow{}).Error; err != nil {
			return err
		}

		for i := range windows {
			windows[i].ID = 0
			windows[i].ProviderID = providerID
			if err := tx.Create(&windows[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) ListActiveAppointmentsForProvider(
	ctx context.Context,
	providerID uint,
) ([]models.Appointment, error) {

	return r.listActive(r.db.WithContext(ctx), providerID)
}

func (r *BookingGormRepository) listActive(
	tx *gorm.DB,
	providerID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := tx.
		Preload("Service").
		Where(
			"provider_id = ? AND status IN ?",
			providerID,
			[]string{
				string(domain.StatusPending),
				string(domain.StatusConfirmed),
				string(domain.StatusCompleted),
			},
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	providerID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Consumer").
		Where(
			"provider_id = ? AND start_time >= ? AND start_time < ?",
			providerID, start, end,
		).
		Order("start_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Appointment (write, serializado por prestador)
// --------------------------------------------------

func (r *BookingGormRepository) providerMutex(providerID uint) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.locks[providerID]
	if !ok {
		m = &sync.Mutex{}
		r.locks[providerID] = m
	}
	return m
}

func (r *BookingGormRepository) usesAdvisoryLocks() bool {
	return r.db.Dialector.Name() == "postgres"
}

func (r *BookingGormRepository) lockProvider(tx *gorm.DB, providerID uint) error {
	return tx.Exec(
		"SELECT pg_advisory_xact_lock(?, ?)",
		bookingLockClass,
		int64(providerID),
	).Error
}

func (r *BookingGormRepository) CreateAppointmentIfFree(
	ctx context.Context,
	ap *models.Appointment,
	bufferMin int,
) ([]models.Appointment, error) {

	if !r.usesAdvisoryLocks() {
		m := r.providerMutex(ap.ProviderID)
		m.Lock()
		defer m.Unlock()
	}

	var conflicts []models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.usesAdvisoryLocks() {
			if err := r.lockProvider(tx, ap.ProviderID); err != nil {
				return err
			}
		}

		existing, err := r.listActive(tx, ap.ProviderID)
		if err != nil {
			return err
		}

		candidate := domain.Interval{Start: ap.StartTime, End: ap.EndTime}
		conflicts = domain.FindConflicts(candidate, existing, bufferMin, "")
		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		return tx.Create(ap).Error
	})

	if httperr.IsBusiness(err, "time_conflict") {
		return conflicts, nil
	}
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (r *BookingGormRepository) RescheduleIfFree(
	ctx context.Context,
	ap *models.Appointment,
	newStart time.Time,
	newEnd time.Time,
	bufferMin int,
) ([]models.Appointment, error) {

	if !r.usesAdvisoryLocks() {
		m := r.providerMutex(ap.ProviderID)
		m.Lock()
		defer m.Unlock()
	}

	var conflicts []models.Appointment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.usesAdvisoryLocks() {
			if err := r.lockProvider(tx, ap.ProviderID); err != nil {
				return err
			}
		}

		existing, err := r.listActive(tx, ap.ProviderID)
		if err != nil {
			return err
		}

		candidate := domain.Interval{Start: newStart, End: newEnd}
		conflicts = domain.FindConflicts(candidate, existing, bufferMin, ap.ID)
		if len(conflicts) > 0 {
			return httperr.ErrBusiness("time_conflict")
		}

		ap.StartTime = newStart
		ap.EndTime = newEnd

		return tx.Save(ap).Error
	})

	if httperr.IsBusiness(err, "time_conflict") {
		return conflicts, nil
	}
	if err != nil {
		return nil, err
	}

	return nil, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{}).Error
}

// --------------------------------------------------
// Discounts
// --------------------------------------------------

func (r *BookingGormRepository) ListDiscountTiers(
	ctx context.Context,
	providerID uint,
) ([]models.ProximityDiscountTier, error) {

	var tiers []models.ProximityDiscountTier
	if err := r.db.WithContext(ctx).
		Preload("Discounts").
		Where("provider_id = ?", providerID).
		Order("tier ASC").
		Find(&tiers).Error; err != nil {
		return nil, err
	}

	return tiers, nil
}

func (r *BookingGormRepository) UpsertDiscountTier(
	ctx context.Context,
	tier *models.ProximityDiscountTier,
	discounts []models.ProximityDiscount,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.ProximityDiscountTier
		err := tx.
			Where("provider_id = ? AND tier = ?", tier.ProviderID, tier.Tier).
			First(&existing).Error

		if err == nil {
			existing.MinDistance = tier.MinDistance
			existing.MaxDistance = tier.MaxDistance
			existing.DistanceUnit = tier.DistanceUnit
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			if err := tx.
				Where("tier_id = ?", existing.ID).
				Delete(&models.ProximityDiscount{}).Error; err != nil {
				return err
			}
			tier.ID = existing.ID
		} else {
			if err := tx.Create(tier).Error; err != nil {
				return err
			}
		}

		for i := range discounts {
			discounts[i].ID = 0
			discounts[i].TierID = tier.ID
			if err := tx.Create(&discounts[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
