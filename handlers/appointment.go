package handlers

import (
	"errors"
	"net/http"

	"trimly/middleware"
	"trimly/models"
	"trimly/services/appointment"
	"trimly/services/identity"
	"trimly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the booking workflow over HTTP.
type AppointmentHandler struct {
	Svc    appointment.Service
	Logger *zap.Logger
}

func NewAppointmentHandler(svc appointment.Service, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Svc: svc, Logger: logger}
}

// CreateAppointment books a new pending appointment for the caller.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req appointment.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	appt, err := h.Svc.Create(c.Request.Context(), middleware.CallerID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appt)
}

// ListMyAppointments returns the calling client's appointments, newest first.
func (h *AppointmentHandler) ListMyAppointments(c *gin.Context) {
	appts, err := h.Svc.ListForClient(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListRequests returns the calling worker's appointment requests, newest
// first, optionally narrowed by exact status/date match, plus the
// per-status counters the dashboard shows.
func (h *AppointmentHandler) ListRequests(c *gin.Context) {
	appts, err := h.Svc.ListForWorker(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	stats := appointment.Stats(appts)

	filter := appointment.Filter{Date: c.Query("date")}
	if raw := c.Query("status"); raw != "" {
		status, ok := models.ParseAppointmentStatus(raw)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "validation", "unknown status filter")
			return
		}
		filter.Status = status
	}

	c.JSON(http.StatusOK, gin.H{
		"appointments": filter.Apply(appts),
		"stats":        stats,
	})
}

// UpdateAppointmentStatus confirms or rejects a pending appointment.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "validation", err.Error())
		return
	}

	status, ok := models.ParseAppointmentStatus(body.Status)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "validation", "unknown status")
		return
	}

	appt, err := h.Svc.Transition(c.Request.Context(), middleware.CallerID(c), c.Param("id"), status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appt)
}

// respondError maps service errors onto HTTP responses, carrying the
// structured fields the UI needs for messaging.
func (h *AppointmentHandler) respondError(c *gin.Context, err error) {
	var dup *appointment.DuplicatePendingError
	switch {
	case errors.Is(err, identity.ErrUnauthenticated):
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "sign in to book an appointment")
	case errors.Is(err, appointment.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "validation", "service, date and time are required")
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{
			"error":        "duplicate_pending",
			"pendingCount": dup.Count,
		})
	case errors.Is(err, appointment.ErrSlotConflict):
		utils.JSONError(c, http.StatusConflict, "slot_conflict", "this slot is already booked")
	case errors.Is(err, appointment.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "invalid_transition", "appointment is no longer pending")
	case errors.Is(err, appointment.ErrForbidden):
		utils.JSONError(c, http.StatusForbidden, "forbidden", "you cannot act on this appointment")
	case errors.Is(err, appointment.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not_found", "appointment not found")
	default:
		h.Logger.Error("appointment operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "store_unavailable", "the booking store did not respond; please retry")
	}
}
