package models

import "time"

// Role distinguishes the two account kinds the platform knows about.
// Stored as a string in Mongo but treated as a closed set everywhere else.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleWorker   Role = "worker"
)

// ParseRole maps a stored role value onto the closed Role set.
// Legacy documents used "client" interchangeably with "customer".
func ParseRole(s string) (Role, bool) {
	switch s {
	case "customer", "client":
		return RoleCustomer, true
	case "worker":
		return RoleWorker, true
	default:
		return "", false
	}
}

// User is a profile document in the "users" collection. Workers and
// customers share the collection and are told apart by Role.
type User struct {
	ID           string    `bson:"id" json:"id"`                                   // Unique user identifier (UUID or identity-provider UID)
	Name         string    `bson:"name" json:"name"`                               // Display name
	Email        string    `bson:"email" json:"email"`                             // Unique email address
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`               // bcrypt hash; empty for identity-provider accounts
	Role         Role      `bson:"role" json:"role"`                               // "customer" or "worker"
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`         // Contact phone (workers)
	Bio          string    `bson:"bio,omitempty" json:"bio,omitempty"`             // Short profile text (workers)
	PhotoURL     string    `bson:"photo_url,omitempty" json:"photo_url,omitempty"` // Avatar URL
	Available    bool      `bson:"available" json:"available"`                     // Whether the worker currently accepts bookings
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`                   // Push notification token
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`                  // SHA-256 of the active session JWT
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// WorkerProfile is the public view of a worker returned by the directory,
// with the rating recomputed from the Reviews collection. Rating snapshots
// persisted on the user document are stale by definition and never read.
type WorkerProfile struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Phone     string   `json:"phone,omitempty"`
	Bio       string   `json:"bio,omitempty"`
	PhotoURL  string   `json:"photo_url,omitempty"`
	Available bool     `json:"available"`
	Rating    string   `json:"rating"` // One-decimal average, "0.0" when unreviewed
	Reviews   []Review `json:"reviews,omitempty"`
}
