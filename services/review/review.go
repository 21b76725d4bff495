package review

import (
	"context"
	"errors"
	"strings"

	reviewRepo "trimly/database/repository/review"
	"trimly/models"
	"trimly/services/identity"
)

// The original product required a few words of substance, not a bare "ok".
const minCommentLength = 5

// DefaultService is the production Service implementation.
type DefaultService struct {
	Repo reviewRepo.ReviewRepository
	Gate identity.Gate
}

// ListForWorker returns a worker's reviews, newest first.
func (s *DefaultService) ListForWorker(ctx context.Context, workerID string) ([]models.Review, error) {
	return s.Repo.GetByWorker(ctx, workerID)
}

// Submit creates the caller's review of a worker. Validation happens before
// any write; if the caller already reviewed this worker the existing review
// id is surfaced so they can edit or delete instead.
func (s *DefaultService) Submit(ctx context.Context, actorID string, req SubmitRequest) (*models.Review, error) {
	actor, err := s.Gate.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if err := validateContent(req.Rating, req.Comment); err != nil {
		return nil, err
	}

	existing, err := s.Repo.FindByWorkerAndAuthor(ctx, req.WorkerID, actor.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &AlreadyReviewedError{ReviewID: existing.ID}
	}

	rv := &models.Review{
		WorkerID:   req.WorkerID,
		AuthorID:   actor.ID,
		AuthorName: actor.Name,
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	}

	if err := s.Repo.Create(ctx, rv); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicate) {
			// The unique index caught a concurrent submit; surface the
			// winner's id like the pre-check would have.
			if winner, findErr := s.Repo.FindByWorkerAndAuthor(ctx, req.WorkerID, actor.ID); findErr == nil && winner != nil {
				return nil, &AlreadyReviewedError{ReviewID: winner.ID}
			}
			return nil, &AlreadyReviewedError{}
		}
		return nil, err
	}
	return rv, nil
}

// Edit updates the caller's own review, re-validating content and stamping
// UpdatedAt.
func (s *DefaultService) Edit(ctx context.Context, actorID, reviewID string, rating int, comment string) (*models.Review, error) {
	actor, err := s.Gate.Resolve(ctx, actorID)
	if err != nil {
		return nil, err
	}

	rv, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rv.AuthorID != actor.ID {
		return nil, ErrForbidden
	}

	if err := validateContent(rating, comment); err != nil {
		return nil, err
	}

	updated, err := s.Repo.UpdateContent(ctx, reviewID, rating, strings.TrimSpace(comment))
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes the caller's own review.
func (s *DefaultService) Delete(ctx context.Context, actorID, reviewID string) error {
	actor, err := s.Gate.Resolve(ctx, actorID)
	if err != nil {
		return err
	}

	rv, err := s.Repo.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if rv.AuthorID != actor.ID {
		return ErrForbidden
	}

	if err := s.Repo.Delete(ctx, reviewID); err != nil {
		if errors.Is(err, reviewRepo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func validateContent(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if len(strings.TrimSpace(comment)) < minCommentLength {
		return ErrInvalidComment
	}
	return nil
}
