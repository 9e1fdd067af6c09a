package booking

import (
	"context"
	"time"

	"github.com/viciniti/service-scheduler/internal/models"
)

type Repository interface {
	// -------- Provider / Service --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.ServiceProvider, error)

	GetServiceByID(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Consumer --------
	GetConsumerByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetOrCreateConsumer(
		ctx context.Context,
		email string,
		name string,
		phone string,
		address string,
	) (*models.User, error)

	// -------- Availability --------
	ListWindowsForProvider(
		ctx context.Context,
		providerID uint,
	) ([]models.AvailabilityWindow, error)

	ReplaceWindows(
		ctx context.Context,
		providerID uint,
		windows []models.AvailabilityWindow,
	) error

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	ListActiveAppointmentsForProvider(
		ctx context.Context,
		providerID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		providerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (write) --------
	// CreateAppointmentIfFree executa a checagem de conflito e o insert como
	// uma unidade serializada por prestador. Se devolver conflitos, nada foi
	// gravado.
	CreateAppointmentIfFree(
		ctx context.Context,
		ap *models.Appointment,
		bufferMin int,
	) ([]models.Appointment, error)

	RescheduleIfFree(
		ctx context.Context,
		ap *models.Appointment,
		newStart time.Time,
		newEnd time.Time,
		bufferMin int,
	) ([]models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Discounts --------
	ListDiscountTiers(
		ctx context.Context,
		providerID uint,
	) ([]models.ProximityDiscountTier, error)

	UpsertDiscountTier(
		ctx context.Context,
		tier *models.ProximityDiscountTier,
		discounts []models.ProximityDiscount,
	) error
}
