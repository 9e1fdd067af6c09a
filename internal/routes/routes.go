package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/viciniti/service-scheduler/internal/audit"
	"github.com/viciniti/service-scheduler/internal/cache"
	"github.com/viciniti/service-scheduler/internal/config"
	"github.com/viciniti/service-scheduler/internal/handlers"
	infraRepo "github.com/viciniti/service-scheduler/internal/infra/repository"
	"github.com/viciniti/service-scheduler/internal/middleware"
	ucBooking "github.com/viciniti/service-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, c cache.Cache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(
		bookingRepo,
		c,
		cfg.BufferMinutes,
	)

	setAvailabilityUC := ucBooking.NewSetProviderAvailability(
		bookingRepo,
		auditDispatcher,
	)

	createAppointmentUC := ucBooking.NewCreateAppointment(
		bookingRepo,
		c,
		auditDispatcher,
		cfg.BufferMinutes,
	)

	rescheduleUC := ucBooking.NewRescheduleAppointment(
		bookingRepo,
		auditDispatcher,
		cfg.BufferMinutes,
	)

	setStatusUC := ucBooking.NewSetAppointmentStatus(
		bookingRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucBooking.NewDeleteAppointment(
		bookingRepo,
		auditDispatcher,
	)

	listByDayUC := ucBooking.NewListAppointmentsByDay(bookingRepo)

	upsertTierUC := ucBooking.NewUpsertDiscountTier(
		bookingRepo,
		auditDispatcher,
	)

	quoteUC := ucBooking.NewGetDiscountQuote(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(
		getAvailabilityUC,
		setAvailabilityUC,
		bookingRepo,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		rescheduleUC,
		setStatusUC,
		deleteAppointmentUC,
		listByDayUC,
	)

	discountHandler := handlers.NewDiscountHandler(
		upsertTierUC,
		quoteUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PÚBLICO (descoberta + convidado)
		// ------------------------------
		api.GET("/services/:id/availability", availabilityHandler.GetServiceAvailability)
		api.GET("/services/:id/discount-quote", discountHandler.Quote)
		api.GET("/providers/:id/availability", availabilityHandler.GetProviderWindows)

		api.POST(
			"/appointments",
			middleware.OptionalAuth(cfg),
			appointmentHandler.Create,
		)

		// ------------------------------
		// AUTENTICADO
		// ------------------------------
		authed := api.Group("")
		authed.Use(middleware.AuthMiddleware(cfg))
		{
			authed.PUT("/appointments/:id", appointmentHandler.Reschedule)
			authed.PATCH("/appointments/:id/status", appointmentHandler.SetStatus)

			provider := authed.Group("/providers")
			provider.Use(middleware.RequireProvider())
			{
				provider.PUT("/availability", availabilityHandler.SetProviderAvailability)
				provider.PUT("/discount-tiers", discountHandler.UpsertTier)
				provider.GET("/appointments", appointmentHandler.ListByDay)
				provider.DELETE("/appointments/:id", appointmentHandler.Delete)
			}
		}
	}
}
