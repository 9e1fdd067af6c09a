package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/viciniti/service-scheduler/internal/httperr"
	"github.com/viciniti/service-scheduler/internal/httpresp"
	"github.com/viciniti/service-scheduler/internal/middleware"
	ucBooking "github.com/viciniti/service-scheduler/internal/usecase/booking"
)

type DiscountHandler struct {
	upsertTierUC *ucBooking.UpsertDiscountTier
	quoteUC      *ucBooking.GetDiscountQuote
}

func NewDiscountHandler(
	upsertTierUC *ucBooking.UpsertDiscountTier,
	quoteUC *ucBooking.GetDiscountQuote,
) *DiscountHandler {
	return &DiscountHandler{
		upsertTierUC: upsertTierUC,
		quoteUC:      quoteUC,
	}
}

type UpsertTierRequest struct {
	Tier         int             `json:"tier" binding:"required"`
	MinDistance  float64         `json:"min_distance"`
	MaxDistance  float64         `json:"max_distance" binding:"required"`
	DistanceUnit string          `json:"distance_unit" binding:"required"`
	Discounts    map[int]float64 `json:"discounts" binding:"required"`
}

// ======================================================
// PUT /api/providers/discount-tiers
// ======================================================

func (h *DiscountHandler) UpsertTier(c *gin.Context) {
	providerID := c.MustGet(middleware.ContextProviderID).(uint)

	var req UpsertTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.upsertTierUC.Execute(c.Request.Context(), ucBooking.UpsertDiscountTierInput{
		ProviderID:   providerID,
		Tier:         req.Tier,
		MinDistance:  req.MinDistance,
		MaxDistance:  req.MaxDistance,
		DistanceUnit: req.DistanceUnit,
		Discounts:    req.Discounts,
	})
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, req)
}

// ======================================================
// GET /api/services/:id/discount-quote?lat=&lng=&date=
// ======================================================

func (h *DiscountHandler) Quote(c *gin.Context) {
	serviceID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	point, ok := parseOptionalPoint(c)
	if !ok {
		return
	}
	if point == nil {
		httperr.BadRequest(c, "missing_coordinates", "lat e lng são obrigatórios.")
		return
	}

	in := ucBooking.DiscountQuoteInput{
		ServiceID: serviceID,
		Location:  *point,
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		in.Date = date
	}

	out, err := h.quoteUC.Execute(c.Request.Context(), in)
	if err != nil {
		writeDomainError(c, err)
		return
	}

	httpresp.OK(c, out)
}
