package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateActive inserts a new pending appointment. The slot and pending-count
// invariants are re-checked inside a transaction because the service-level
// checks read a snapshot that may be stale by the time the write commits.
// The partial unique index on (worker_id, date, time) backstops the slot
// invariant even outside a replica set.
func (r *MongoAppointmentRepo) CreateActive(ctx context.Context, appt *models.Appointment) error {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	appt.Status = models.AppointmentPending
	appt.CreatedAt = time.Now()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		taken, err := r.coll.CountDocuments(sc, activeSlotFilter(appt.WorkerID, appt.Date, appt.Time))
		if err != nil {
			return fmt.Errorf("slot re-check failed: %w", err)
		}
		if taken > 0 {
			return ErrSlotTaken
		}

		pending, err := r.coll.CountDocuments(sc, pendingClientFilter(appt.ClientID))
		if err != nil {
			return fmt.Errorf("pending re-check failed: %w", err)
		}
		if pending > 0 {
			return ErrClientHasPending
		}

		if _, err := r.coll.InsertOne(sc, appt); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert appointment failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}

	return nil
}
