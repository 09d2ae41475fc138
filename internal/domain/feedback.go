package domain

import "time"

// Feedback is the aggregate for submitted reviews.
type Feedback struct {
	ID        string
	Name      string
	Email     string
	Message   string
	Rating    int
	CreatedAt time.Time
}

// FeedbackSort enumerates supported list orderings.
type FeedbackSort string

const (
	SortLatest        FeedbackSort = "latest"
	SortOldest        FeedbackSort = "oldest"
	SortHighestRating FeedbackSort = "highest_rating"
	SortLowestRating  FeedbackSort = "lowest_rating"
)

// ParseFeedbackSort maps a request-level sort value to a FeedbackSort.
// Unknown or empty values fall back to newest-first.
func ParseFeedbackSort(value string) FeedbackSort {
	switch FeedbackSort(value) {
	case SortLatest, SortOldest, SortHighestRating, SortLowestRating:
		return FeedbackSort(value)
	default:
		return SortLatest
	}
}
