package review

import (
	"math"
	"strconv"

	"trimly/models"
)

// AverageRating computes a worker's displayed rating from its review set:
// the mean rating rounded half-up to one decimal, "0.0" when there are no
// reviews. Always derived from the reviews themselves; persisted rating
// snapshots are never trusted.
func AverageRating(reviews []models.Review) string {
	if len(reviews) == 0 {
		return "0.0"
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}

	avg := float64(total) / float64(len(reviews))
	rounded := math.Floor(avg*10+0.5) / 10
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}
