package appointment

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers missing or malformed booking input.
	ErrValidation = errors.New("invalid booking request")
	// ErrSlotConflict means an active appointment already holds the slot.
	ErrSlotConflict = errors.New("slot is already booked")
	// ErrInvalidTransition means the appointment is not pending, or the
	// target status is not a legal transition target.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrForbidden means the caller does not own the appointment.
	ErrForbidden = errors.New("not allowed to act on this appointment")
	// ErrNotFound means no appointment matches the given id.
	ErrNotFound = errors.New("appointment not found")
)

// DuplicatePendingError is returned when a client tries to book while an
// earlier request is still awaiting a worker response. Count carries the
// number of pending appointments so the caller can message it.
type DuplicatePendingError struct {
	Count int64
}

func (e *DuplicatePendingError) Error() string {
	return fmt.Sprintf("client already has %d pending appointment(s)", e.Count)
}
