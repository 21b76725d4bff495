package appointmentRepo

import (
	"context"
	"errors"

	"trimly/models"
)

// Sentinel errors surfaced by the repository so the service layer can map
// them onto its own taxonomy.
var (
	// ErrNotFound is returned when no appointment matches the given id.
	ErrNotFound = errors.New("appointment not found")
	// ErrSlotTaken is returned when an active appointment already occupies
	// the (worker, date, time) slot at insert time.
	ErrSlotTaken = errors.New("slot already taken")
	// ErrClientHasPending is returned when the client already has a pending
	// appointment at insert time.
	ErrClientHasPending = errors.New("client already has a pending appointment")
	// ErrNotPending is returned when a status transition targets an
	// appointment that is no longer pending.
	ErrNotPending = errors.New("appointment is not pending")
)

// AppointmentRepository defines methods for appointment data access.
// Appointments are append-only: there is no delete.
type AppointmentRepository interface {
	// CreateActive inserts a new pending appointment, re-checking inside a
	// transaction that the slot is free and the client has no pending
	// appointment. Stamps ID and CreatedAt on the passed record.
	CreateActive(ctx context.Context, appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetByWorker retrieves a worker's appointments, newest first.
	GetByWorker(ctx context.Context, workerID string) ([]models.Appointment, error)
	// GetByClient retrieves a client's appointments, newest first.
	GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error)
	// CountActiveForSlot counts pending or confirmed appointments occupying
	// the (worker, date, time) slot.
	CountActiveForSlot(ctx context.Context, workerID, date, timeOfDay string) (int64, error)
	// CountPendingForClient counts the client's pending appointments.
	CountPendingForClient(ctx context.Context, clientID string) (int64, error)
	// UpdateStatusIfPending transitions the appointment to newStatus only if
	// it is currently pending; ErrNotPending otherwise.
	UpdateStatusIfPending(ctx context.Context, id string, newStatus models.AppointmentStatus) error
}
