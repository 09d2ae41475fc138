package stats

import (
	"math"

	"github.com/Manav933/Feedback/internal/domain"
)

// Summary holds aggregate statistics over a feedback set.
type Summary struct {
	Total              int         `json:"total"`
	AverageRating      float64     `json:"averageRating"`
	Positive           int         `json:"positive"`
	Negative           int         `json:"negative"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
}

// Compute aggregates the given records. Ratings of 4 and above count as
// positive, below 3 as negative; exactly 3 is neither. The distribution
// always carries all five keys and the average is 0 for an empty set.
func Compute(records []domain.Feedback) Summary {
	distribution := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	summary := Summary{RatingDistribution: distribution}

	sum := 0
	for _, record := range records {
		summary.Total++
		sum += record.Rating
		if record.Rating >= 4 {
			summary.Positive++
		}
		if record.Rating < 3 {
			summary.Negative++
		}
		if record.Rating >= 1 && record.Rating <= 5 {
			distribution[record.Rating]++
		}
	}

	if summary.Total > 0 {
		average := float64(sum) / float64(summary.Total)
		summary.AverageRating = math.Round(average*100) / 100
	}
	return summary
}
