package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFeedbackSort(t *testing.T) {
	assert.Equal(t, SortLatest, ParseFeedbackSort("latest"))
	assert.Equal(t, SortOldest, ParseFeedbackSort("oldest"))
	assert.Equal(t, SortHighestRating, ParseFeedbackSort("highest_rating"))
	assert.Equal(t, SortLowestRating, ParseFeedbackSort("lowest_rating"))

	// Anything else falls back to newest-first.
	assert.Equal(t, SortLatest, ParseFeedbackSort(""))
	assert.Equal(t, SortLatest, ParseFeedbackSort("rating"))
	assert.Equal(t, SortLatest, ParseFeedbackSort("LATEST"))
}
