package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// Payload de 409: até 3 agendamentos conflitantes para o usuário escolher
// outro horário.
type ConflictingAppointment struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Service   string `json:"service"`
}

type ConflictResponse struct {
	Code         string                   `json:"error_code"`
	Message      string                   `json:"message"`
	Appointments []ConflictingAppointment `json:"conflict_appointments"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, message string, appointments []ConflictingAppointment) {
	c.JSON(http.StatusConflict, ConflictResponse{
		Code:         "time_conflict",
		Message:      message,
		Appointments: appointments,
	})
}
