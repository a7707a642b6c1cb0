package models

import "github.com/julianstephens/commutewell/internal/constants"

// AxisTrend pairs a trend direction with its display glyph.
type AxisTrend struct {
	Direction constants.TrendDirection `json:"direction"`
	Glyph     string                   `json:"glyph"`
}

// Trends holds the week-over-week movement of every rating axis.
type Trends struct {
	Energy  AxisTrend `json:"energy"`
	Stress  AxisTrend `json:"stress"`
	Comfort AxisTrend `json:"comfort"`
}

// StableTrends is the safe default when there is not enough history.
func StableTrends() Trends {
	stable := AxisTrend{
		Direction: constants.TrendStable,
		Glyph:     constants.TrendGlyphs[constants.TrendStable],
	}
	return Trends{Energy: stable, Stress: stable, Comfort: stable}
}

// WellnessSnapshot is the derived score bundle shown on the dashboard
// and pushed to the remote display. It is a pure projection over the
// stored records and is recomputed on every change, never persisted.
type WellnessSnapshot struct {
	WellnessScore  int     `json:"wellnessScore"`
	TodaysFocus    string  `json:"todaysFocus"`
	Streak         int     `json:"streak"`
	TasksCompleted int     `json:"tasksCompleted"`
	TotalTasks     int     `json:"totalTasks"`
	CommuteTime    float64 `json:"commuteTime"` // weekly round-trip hours
	Trends         Trends  `json:"trends"`
}
