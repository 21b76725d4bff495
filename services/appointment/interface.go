package appointment

import (
	"context"

	"trimly/models"
)

// CreateRequest carries a customer's booking request.
type CreateRequest struct {
	WorkerID string `json:"worker_id"`
	Service  string `json:"service"`
	Price    int    `json:"price"`
	Date     string `json:"date"` // "YYYY-MM-DD"
	Time     string `json:"time"` // "HH:MM"
}

// Service coordinates the appointment lifecycle: slot conflict checking,
// creation, listing and status transitions.
type Service interface {
	// Create books a new pending appointment for the caller, enforcing the
	// one-pending-per-client and one-active-per-slot invariants.
	Create(ctx context.Context, actorID string, req CreateRequest) (*models.Appointment, error)
	// HasConflict reports whether an active appointment already occupies
	// the slot. Errors must be treated as "conflict cannot be ruled out".
	HasConflict(ctx context.Context, workerID, date, timeOfDay string) (bool, error)
	// ListForWorker returns a worker's appointments, newest first.
	ListForWorker(ctx context.Context, workerID string) ([]models.Appointment, error)
	// ListForClient returns a client's appointments, newest first.
	ListForClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	// Transition moves a pending appointment to confirmed or rejected.
	// Only the appointment's worker may call it.
	Transition(ctx context.Context, actorID, appointmentID string, newStatus models.AppointmentStatus) (*models.Appointment, error)
}
