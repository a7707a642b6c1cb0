package models

import (
	"math"

	"github.com/julianstephens/commutewell/internal/constants"
)

// CheckinRecord is a single day's mood self-report. At most one record
// exists per date; re-recording a date replaces the previous record.
type CheckinRecord struct {
	Date          string                            `json:"date"`      // YYYY-MM-DD
	Timestamp     string                            `json:"timestamp"` // RFC3339 capture instant
	Ratings       map[constants.RatingAxis]int      `json:"ratings"`   // partial; 1-5 per present axis
	Note          string                            `json:"note,omitempty"`
	AverageRating float64                           `json:"average_rating"`
}

// ComputeAverage returns the mean of the present rating values rounded
// to one decimal, or 0 when no axis is rated.
func (c CheckinRecord) ComputeAverage() float64 {
	if len(c.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, v := range c.Ratings {
		sum += v
	}
	avg := float64(sum) / float64(len(c.Ratings))
	return math.Round(avg*10) / 10
}

// Rating returns the value for an axis and whether it was recorded.
func (c CheckinRecord) Rating(axis constants.RatingAxis) (int, bool) {
	v, ok := c.Ratings[axis]
	return v, ok
}
