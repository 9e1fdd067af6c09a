package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/httpresp"
	"github.com/viciniti/service-scheduler/internal/middleware"
	ucBooking "github.com/viciniti/service-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	getAvailabilityUC *ucBooking.GetAvailability
	setAvailabilityUC *ucBooking.SetProviderAvailability
	listWindows       domain.Repository
}

func NewAvailabilityHandler(
	getAvailabilityUC *ucBooking.GetAvailability,
	setAvailabilityUC *ucBooking.SetProviderAvailability,
	repo domain.Repository,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getAvailabilityUC: getAvailabilityUC,
		setAvailabilityUC: setAvailabilityUC,
		listWindows:       repo,
	}
}

// ======================================================
// GET /api/services/:id/availability
// ======================================================

func (h *AvailabilityHandler) GetServiceAvailability(c *gin.Context) {
	serviceID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	consumer, ok := parseOptionalPoint(c)
	if !ok {
		return
	}

	out, err := h.getAvailabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		ServiceID: serviceID,
		Consumer:  consumer,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// GET /api/providers/:id/availability
// ======================================================

// Janelas cruas, agrupadas por day_key (sem expandir em slots).
func (h *AvailabilityHandler) GetProviderWindows(c *gin.Context) {
	providerID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	windows, err := h.listWindows.ListWindowsForProvider(c.Request.Context(), providerID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_windows", "Erro ao listar disponibilidade.")
		return
	}

	out := map[string][]gin.H{}
	for _, w := range windows {
		out[w.DayKey] = append(out[w.DayKey], gin.H{
			"id":    w.ID,
			"start": w.StartTime,
			"end":   w.EndTime,
		})
	}

	httpresp.OK(c, out)
}

// ======================================================
// PUT /api/providers/availability
// ======================================================

func (h *AvailabilityHandler) SetProviderAvailability(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	var req map[string][]ucBooking.WindowInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.setAvailabilityUC.Execute(c.Request.Context(), providerID, req); err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, req)
}
