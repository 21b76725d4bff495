package models

import "time"

// AppointmentStatus is the closed set of appointment states.
type AppointmentStatus string

const (
	// AppointmentPending is the sole initial state; the worker has not
	// responded yet.
	AppointmentPending AppointmentStatus = "pending"
	// AppointmentConfirmed and AppointmentRejected are terminal.
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentRejected  AppointmentStatus = "rejected"
)

// ParseAppointmentStatus maps a stored status value onto the closed set.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case AppointmentPending, AppointmentConfirmed, AppointmentRejected:
		return AppointmentStatus(s), true
	default:
		return "", false
	}
}

// Terminal reports whether no further transitions are permitted out of s.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentConfirmed || s == AppointmentRejected
}

// Active reports whether s holds the slot: a pending or confirmed
// appointment blocks other bookings for the same (worker, date, time).
func (s AppointmentStatus) Active() bool {
	return s == AppointmentPending || s == AppointmentConfirmed
}

// Appointment is a booking request document in the "appointments"
// collection. Records are append-only: status is the only field the
// worker may change, and nothing is ever deleted.
type Appointment struct {
	ID         string            `bson:"id" json:"id"`                   // Unique appointment identifier (UUID)
	WorkerID   string            `bson:"worker_id" json:"worker_id"`     // Worker who was booked
	ClientID   string            `bson:"client_id" json:"client_id"`     // Customer who made the request
	ClientName string            `bson:"client_name" json:"client_name"` // Display name copied at creation time, not synced afterwards
	Service    string            `bson:"service" json:"service"`         // Service label, e.g. "haircut"
	Price      int               `bson:"price" json:"price"`             // Quoted price, non-negative
	Date       string            `bson:"date" json:"date"`               // Calendar date in "YYYY-MM-DD" format
	Time       string            `bson:"time" json:"time"`               // Local time of day in "HH:MM" format
	Status     AppointmentStatus `bson:"status" json:"status"`           // pending / confirmed / rejected
	CreatedAt  time.Time         `bson:"created_at" json:"created_at"`   // Stamped by the repository at insert, orders listings
}

// AppointmentStats are the dashboard counters per status bucket.
type AppointmentStats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Rejected  int `json:"rejected"`
}
