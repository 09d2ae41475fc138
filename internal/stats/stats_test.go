package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Manav933/Feedback/internal/domain"
)

func recordsWithRatings(ratings ...int) []domain.Feedback {
	records := make([]domain.Feedback, len(ratings))
	for i, rating := range ratings {
		records[i] = domain.Feedback{Rating: rating}
	}
	return records
}

func TestComputeSummary(t *testing.T) {
	summary := Compute(recordsWithRatings(1, 2, 3, 4, 5, 4, 5))

	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, 3.43, summary.AverageRating)
	assert.Equal(t, 4, summary.Positive)
	assert.Equal(t, 2, summary.Negative)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 2, 5: 2}, summary.RatingDistribution)
}

func TestComputeEmptySet(t *testing.T) {
	summary := Compute(nil)

	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 0.0, summary.AverageRating)
	assert.Equal(t, 0, summary.Positive)
	assert.Equal(t, 0, summary.Negative)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, summary.RatingDistribution)
}

func TestComputeRatingThreeIsNeither(t *testing.T) {
	summary := Compute(recordsWithRatings(3, 3, 3))
	assert.Equal(t, 0, summary.Positive)
	assert.Equal(t, 0, summary.Negative)
	assert.Equal(t, 3.0, summary.AverageRating)
}
