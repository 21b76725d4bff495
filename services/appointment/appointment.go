package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	apptRepo "trimly/database/repository/appointment"
	"trimly/models"
	"trimly/services/identity"
	"trimly/services/notification"
)

// DefaultService is the production Service implementation.
type DefaultService struct {
	Repo     apptRepo.AppointmentRepository
	Gate     identity.Gate
	Notifier notification.Service
}

// Create books a new pending appointment for the caller. Preconditions are
// checked in order and short-circuit on the first failure, before any write:
// identity, input validation, pending-count, slot conflict. The repository
// re-checks the two invariants transactionally, so a stale read here cannot
// produce a double booking.
func (s *DefaultService) Create(ctx context.Context, actorID string, req CreateRequest) (*models.Appointment, error) {
	actor, err := s.Gate.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleCustomer {
		return nil, ErrForbidden
	}

	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	pending, err := s.Repo.CountPendingForClient(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, &DuplicatePendingError{Count: pending}
	}

	conflict, err := s.HasConflict(ctx, req.WorkerID, req.Date, req.Time)
	if err != nil {
		// Fail closed: an unanswered conflict check blocks the booking.
		return nil, err
	}
	if conflict {
		return nil, ErrSlotConflict
	}

	appt := &models.Appointment{
		WorkerID:   req.WorkerID,
		ClientID:   actor.ID,
		ClientName: actor.Name,
		Service:    req.Service,
		Price:      req.Price,
		Date:       req.Date,
		Time:       req.Time,
	}

	if err := s.Repo.CreateActive(ctx, appt); err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrSlotTaken):
			return nil, ErrSlotConflict
		case errors.Is(err, apptRepo.ErrClientHasPending):
			count, countErr := s.Repo.CountPendingForClient(ctx, actor.ID)
			if countErr != nil || count == 0 {
				count = 1
			}
			return nil, &DuplicatePendingError{Count: count}
		}
		return nil, err
	}

	if s.Notifier != nil {
		_ = s.Notifier.NotifyAppointmentRequested(ctx, appt.WorkerID, appt)
	}

	return appt, nil
}

// HasConflict reports whether an active appointment already occupies the
// (worker, date, time) slot. Existence alone is the conflict signal.
func (s *DefaultService) HasConflict(ctx context.Context, workerID, date, timeOfDay string) (bool, error) {
	count, err := s.Repo.CountActiveForSlot(ctx, workerID, date, timeOfDay)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListForWorker returns a worker's appointments, newest first.
func (s *DefaultService) ListForWorker(ctx context.Context, workerID string) ([]models.Appointment, error) {
	return s.Repo.GetByWorker(ctx, workerID)
}

// ListForClient returns a client's appointments, newest first.
func (s *DefaultService) ListForClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return s.Repo.GetByClient(ctx, clientID)
}

// Transition moves a pending appointment to confirmed or rejected. Only the
// worker the appointment references may decide it, and a terminal
// appointment can never be re-decided.
func (s *DefaultService) Transition(ctx context.Context, actorID, appointmentID string, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	actor, err := s.Gate.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if !newStatus.Terminal() {
		return nil, ErrInvalidTransition
	}

	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if actor.Role != models.RoleWorker || appt.WorkerID != actor.ID {
		return nil, ErrForbidden
	}

	if err := s.Repo.UpdateStatusIfPending(ctx, appointmentID, newStatus); err != nil {
		switch {
		case errors.Is(err, apptRepo.ErrNotPending):
			return nil, ErrInvalidTransition
		case errors.Is(err, apptRepo.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}
	appt.Status = newStatus

	if s.Notifier != nil {
		_ = s.Notifier.NotifyAppointmentDecided(ctx, appt.ClientID, appt)
	}

	return appt, nil
}

func validateCreateRequest(req CreateRequest) error {
	if req.WorkerID == "" || strings.TrimSpace(req.Service) == "" || req.Date == "" || req.Time == "" {
		return ErrValidation
	}
	if req.Price < 0 {
		return ErrValidation
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return ErrValidation
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return ErrValidation
	}
	return nil
}
