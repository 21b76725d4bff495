package reviewRepo

import (
	"context"
	"errors"

	"trimly/models"
)

var (
	// ErrNotFound is returned when no review matches the given id.
	ErrNotFound = errors.New("review not found")
	// ErrDuplicate is returned when the author already reviewed the worker.
	ErrDuplicate = errors.New("review already exists for this worker and author")
)

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review. Stamps ID and CreatedAt on the record.
	Create(ctx context.Context, review *models.Review) error
	// GetByID retrieves a review by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Review, error)
	// GetByWorker retrieves a worker's reviews, newest first.
	GetByWorker(ctx context.Context, workerID string) ([]models.Review, error)
	// FindByWorkerAndAuthor returns the author's review of the worker,
	// nil when none exists.
	FindByWorkerAndAuthor(ctx context.Context, workerID, authorID string) (*models.Review, error)
	// UpdateContent replaces rating and comment and stamps UpdatedAt.
	UpdateContent(ctx context.Context, id string, rating int, comment string) (*models.Review, error)
	// Delete removes a review by its ID.
	Delete(ctx context.Context, id string) error
}
