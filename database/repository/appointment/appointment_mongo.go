package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new instance of AppointmentRepository using MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	coll := database.MongoClient.Database("trimly").Collection("appointments")
	repo := &MongoAppointmentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetByID retrieves an appointment by its unique ID.
func (r *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch appointment with id %s: %w", id, err)
	}
	return &appt, nil
}

func (r *MongoAppointmentRepo) findSorted(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	for cursor.Next(ctx) {
		var a models.Appointment
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode appointment: %w", err)
		}
		appts = append(appts, a)
	}
	return appts, nil
}

// GetByWorker retrieves a worker's appointments, newest first.
func (r *MongoAppointmentRepo) GetByWorker(ctx context.Context, workerID string) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{"worker_id": workerID})
}

// GetByClient retrieves a client's appointments, newest first.
func (r *MongoAppointmentRepo) GetByClient(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{"client_id": clientID})
}

// CountActiveForSlot counts pending or confirmed appointments occupying
// the (worker, date, time) slot.
func (r *MongoAppointmentRepo) CountActiveForSlot(ctx context.Context, workerID, date, timeOfDay string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, activeSlotFilter(workerID, date, timeOfDay))
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments for slot: %w", err)
	}
	return count, nil
}

// CountPendingForClient counts the client's pending appointments.
func (r *MongoAppointmentRepo) CountPendingForClient(ctx context.Context, clientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, pendingClientFilter(clientID))
	if err != nil {
		return 0, fmt.Errorf("failed to count pending appointments: %w", err)
	}
	return count, nil
}

// UpdateStatusIfPending transitions the appointment to newStatus only if it
// is currently pending. The status guard lives in the filter so a second
// transition can never match the document.
func (r *MongoAppointmentRepo) UpdateStatusIfPending(ctx context.Context, id string, newStatus models.AppointmentStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.AppointmentPending}
	update := bson.M{"$set": bson.M{"status": newStatus}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update status for appointment %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		// Distinguish a missing document from a terminal one.
		count, err := r.coll.CountDocuments(ctx, bson.M{"id": id})
		if err != nil {
			return fmt.Errorf("failed to resolve appointment %s: %w", id, err)
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrNotPending
	}
	return nil
}

func activeSlotFilter(workerID, date, timeOfDay string) bson.M {
	return bson.M{
		"worker_id": workerID,
		"date":      date,
		"time":      timeOfDay,
		"status":    bson.M{"$in": bson.A{models.AppointmentPending, models.AppointmentConfirmed}},
	}
}

func pendingClientFilter(clientID string) bson.M {
	return bson.M{
		"client_id": clientID,
		"status":    models.AppointmentPending,
	}
}
