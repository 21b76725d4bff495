package review

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRating means the rating is outside the 1..5 integer range.
	ErrInvalidRating = errors.New("rating must be an integer between 1 and 5")
	// ErrInvalidComment means the comment is empty or too short.
	ErrInvalidComment = errors.New("comment is too short")
	// ErrForbidden means the caller does not own the review.
	ErrForbidden = errors.New("not allowed to act on this review")
	// ErrNotFound means no review matches the given id.
	ErrNotFound = errors.New("review not found")
)

// AlreadyReviewedError is returned when the author already reviewed this
// worker. ReviewID names the existing review so the caller can redirect to
// edit or delete instead of creating a second one.
type AlreadyReviewedError struct {
	ReviewID string
}

func (e *AlreadyReviewedError) Error() string {
	return fmt.Sprintf("worker already reviewed (review %s)", e.ReviewID)
}
