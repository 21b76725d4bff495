package review

import (
	"testing"

	"trimly/models"

	"github.com/stretchr/testify/assert"
)

func ratings(values ...int) []models.Review {
	out := make([]models.Review, 0, len(values))
	for _, v := range values {
		out = append(out, models.Review{Rating: v})
	}
	return out
}

func TestAverageRating_NoReviews(t *testing.T) {
	assert.Equal(t, "0.0", AverageRating(nil))
	assert.Equal(t, "0.0", AverageRating([]models.Review{}))
}

func TestAverageRating_SingleReview(t *testing.T) {
	assert.Equal(t, "4.0", AverageRating(ratings(4)))
}

func TestAverageRating_ExactHalfRoundsUp(t *testing.T) {
	// (4+5)/2 = 4.5: kept, not truncated to 4.
	assert.Equal(t, "4.5", AverageRating(ratings(4, 5)))
	// (3+4)/2 = 3.5
	assert.Equal(t, "3.5", AverageRating(ratings(3, 4)))
}

func TestAverageRating_RepeatingDecimal(t *testing.T) {
	// 10/3 = 3.333... rounds to 3.3
	assert.Equal(t, "3.3", AverageRating(ratings(3, 3, 4)))
	// 14/3 = 4.666... rounds to 4.7
	assert.Equal(t, "4.7", AverageRating(ratings(5, 5, 4)))
}

func TestAverageRating_AlwaysOneDecimal(t *testing.T) {
	assert.Equal(t, "5.0", AverageRating(ratings(5, 5, 5)))
	assert.Equal(t, "1.0", AverageRating(ratings(1)))
}
