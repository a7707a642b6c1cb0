package models

import (
	"testing"

	"github.com/julianstephens/commutewell/internal/constants"
)

func TestComputeAverage(t *testing.T) {
	tests := []struct {
		name    string
		ratings map[constants.RatingAxis]int
		want    float64
	}{
		{
			name:    "no ratings",
			ratings: nil,
			want:    0,
		},
		{
			name:    "single axis",
			ratings: map[constants.RatingAxis]int{constants.AxisEnergy: 3},
			want:    3.0,
		},
		{
			name: "two axes",
			ratings: map[constants.RatingAxis]int{
				constants.AxisEnergy: 4,
				constants.AxisStress: 2,
			},
			want: 3.0,
		},
		{
			name: "rounds to one decimal",
			ratings: map[constants.RatingAxis]int{
				constants.AxisEnergy:  5,
				constants.AxisStress:  4,
				constants.AxisComfort: 4,
			},
			want: 4.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CheckinRecord{Ratings: tt.ratings}
			if got := c.ComputeAverage(); got != tt.want {
				t.Errorf("ComputeAverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTaskDayCounts(t *testing.T) {
	day := DefaultTaskDay("2026-03-01")
	completed, total := day.Counts()
	if completed != 0 {
		t.Errorf("fresh day completed = %d, want 0", completed)
	}
	if total != 5 {
		t.Errorf("fresh day total = %d, want 5", total)
	}

	day.Morning[0].Completed = true
	day.Evening[0].Completed = true
	completed, total = day.Counts()
	if completed != 2 || total != 5 {
		t.Errorf("Counts() = (%d, %d), want (2, 5)", completed, total)
	}
}
