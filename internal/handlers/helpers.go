package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/viciniti/service-scheduler/internal/domain/booking"
	"github.com/viciniti/service-scheduler/internal/geo"
	"github.com/viciniti/service-scheduler/internal/httperr"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// Coordenadas do consumidor são opcionais; ou vêm as duas, ou nenhuma.
func parseOptionalPoint(c *gin.Context) (*geo.Point, bool) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" && lngStr == "" {
		return nil, true
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		httperr.BadRequest(c, "invalid_coordinates", "Coordenadas inválidas.")
		return nil, false
	}

	return &geo.Point{Lat: lat, Lng: lng}, true
}

// writeDomainError traduz erros de negócio para o status HTTP adequado.
// Única fronteira onde erro de domínio vira resposta.
func writeDomainError(c *gin.Context, err error) {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		payload := make([]httperr.ConflictingAppointment, 0, len(conflict.Appointments))
		for _, ap := range conflict.Appointments {
			payload = append(payload, httperr.ConflictingAppointment{
				ID:        ap.ID,
				StartTime: ap.StartTime.Format(time.RFC3339),
				EndTime:   ap.EndTime.Format(time.RFC3339),
				Service:   ap.Service.Name,
			})
		}
		httperr.Conflict(c, "Horário conflita com agendamento existente. Escolha outro horário.", payload)
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "service_not_found", "provider_not_found",
			"appointment_not_found", "consumer_not_found":
			httperr.NotFound(c, be.Code, "Registro não encontrado.")
		case "invalid_transition", "invalid_state", "invalid_status",
			"invalid_window", "invalid_day_key", "invalid_time_range",
			"invalid_tier", "invalid_tier_bounds", "invalid_distance_unit",
			"invalid_appointment_count", "invalid_percentage",
			"consumer_required":
			httperr.BadRequest(c, be.Code, "Requisição inválida.")
		default:
			httperr.Internal(c, be.Code, "Erro interno.")
		}
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}
