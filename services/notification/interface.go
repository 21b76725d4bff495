package notification

import (
	"context"

	"trimly/models"
)

// Service defines methods for sending FCM pushes around the appointment
// lifecycle. Callers treat delivery as best-effort: a lost push never fails
// a booking.
type Service interface {
	// NotifyAppointmentRequested tells a worker about a new pending request.
	NotifyAppointmentRequested(ctx context.Context, workerID string, appt *models.Appointment) error
	// NotifyAppointmentDecided tells a client their request was confirmed
	// or rejected.
	NotifyAppointmentDecided(ctx context.Context, clientID string, appt *models.Appointment) error
}
