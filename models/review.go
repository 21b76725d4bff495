package models

import "time"

// Review is a document in the "reviews" collection. At most one review
// exists per (worker, author) pair; only the author may edit or delete it.
type Review struct {
	ID         string    `bson:"id" json:"id"`                                   // Unique review identifier (UUID)
	WorkerID   string    `bson:"worker_id" json:"worker_id"`                     // Worker being reviewed
	AuthorID   string    `bson:"author_id" json:"author_id"`                     // Customer who wrote the review
	AuthorName string    `bson:"author_name" json:"author_name"`                 // Display name copied at creation time
	Rating     int       `bson:"rating" json:"rating"`                           // Integer 1..5
	Comment    string    `bson:"comment" json:"comment"`                         // Free text, minimum length enforced by the service
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`                   // Orders listings, newest first
	UpdatedAt  time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"` // Set on edit
}
