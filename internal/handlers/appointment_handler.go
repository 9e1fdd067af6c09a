package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/viciniti/service-scheduler/internal/geo"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/httpresp"
	"github.com/viciniti/service-scheduler/internal/middleware"
	ucBooking "github.com/viciniti/service-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucBooking.CreateAppointment
	rescheduleUC *ucBooking.RescheduleAppointment
	setStatusUC  *ucBooking.SetAppointmentStatus
	deleteUC     *ucBooking.DeleteAppointment
	listByDayUC  *ucBooking.ListAppointmentsByDay
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	rescheduleUC *ucBooking.RescheduleAppointment,
	setStatusUC *ucBooking.SetAppointmentStatus,
	deleteUC *ucBooking.DeleteAppointment,
	listByDayUC *ucBooking.ListAppointmentsByDay,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		rescheduleUC: rescheduleUC,
		setStatusUC:  setStatusUC,
		deleteUC:     deleteUC,
		listByDayUC:  listByDayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID uint       `json:"service_id" binding:"required"`
	Start     time.Time  `json:"start_time" binding:"required"`
	End       *time.Time `json:"end_time"`

	// Convidado: e-mail obrigatório quando não autenticado.
	ConsumerEmail   string `json:"consumer_email"`
	ConsumerName    string `json:"consumer_name"`
	ConsumerPhone   string `json:"consumer_phone"`
	ConsumerAddress string `json:"consumer_address"`

	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`

	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type RescheduleRequest struct {
	Start *time.Time `json:"start_time"`
	End   *time.Time `json:"end_time"`
	Notes *string    `json:"notes"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// POST /api/appointments
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucBooking.CreateAppointmentInput{
		ServiceID:       req.ServiceID,
		ConsumerEmail:   req.ConsumerEmail,
		ConsumerName:    req.ConsumerName,
		ConsumerPhone:   req.ConsumerPhone,
		ConsumerAddress: req.ConsumerAddress,
		Start:           req.Start,
		End:             req.End,
		Status:          req.Status,
		Notes:           req.Notes,
	}

	// Autenticado: o token manda. Convidado: contato no corpo.
	if userID, exists := c.Get(middleware.ContextUserID); exists {
		in.ConsumerID = userID.(uint)
	}

	if req.Lat != nil && req.Lng != nil {
		in.Location = &geo.Point{Lat: *req.Lat, Lng: *req.Lng}
	}

	ap, err := h.createUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// PUT /api/appointments/:id
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucBooking.RescheduleInput{
		AppointmentID: c.Param("id"),
		Start:         req.Start,
		End:           req.End,
		Notes:         req.Notes,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// PATCH /api/appointments/:id/status
// ======================================================

func (h *AppointmentHandler) SetStatus(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status obrigatório.")
		return
	}

	ap, err := h.setStatusUC.Execute(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE /api/appointments/:id
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		writeDomainError(c, err)
		return
	}

	c.Status(204)
}

// ======================================================
// GET /api/providers/appointments?date=YYYY-MM-DD
// ======================================================

func (h *AppointmentHandler) ListByDay(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	apps, err := h.listByDayUC.Execute(c.Request.Context(), providerID, date)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.List(c, apps)
}
