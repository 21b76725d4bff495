package review

import (
	"context"

	"trimly/models"
)

// SubmitRequest carries a new or edited review.
type SubmitRequest struct {
	WorkerID string `json:"worker_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// Service manages the review lifecycle and the derived worker rating.
type Service interface {
	// ListForWorker returns a worker's reviews, newest first.
	ListForWorker(ctx context.Context, workerID string) ([]models.Review, error)
	// Submit creates the caller's review of a worker. At most one review
	// per (worker, author); a second submit fails with AlreadyReviewedError.
	Submit(ctx context.Context, actorID string, req SubmitRequest) (*models.Review, error)
	// Edit updates the caller's own review and stamps UpdatedAt.
	Edit(ctx context.Context, actorID, reviewID string, rating int, comment string) (*models.Review, error)
	// Delete removes the caller's own review.
	Delete(ctx context.Context, actorID, reviewID string) error
}
