package wellness

import (
	"math"
	"time"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/utils"
)

// Inputs is everything the score formula needs, gathered up front so
// ComputeScore stays a pure function.
type Inputs struct {
	TasksCompleted int
	TotalTasks     int
	Checkins       []models.CheckinRecord // ordered by date ascending
	Profile        *models.CommuteProfile // nil when not configured
	Streak         int
}

// ComputeScore combines task completion, recent mood averages, the
// check-in streak, and the commute burden into a 0-100 composite.
func ComputeScore(in Inputs) int {
	score := constants.ScoreBase

	// Task completion: up to 30 points
	total := in.TotalTasks
	if total <= 0 {
		total = constants.FallbackTotalTasks
	}
	score += float64(in.TasksCompleted) / float64(total) * constants.ScoreTaskWeight

	// Mood: up to 7 points each for energy and (inverted) stress,
	// averaged over the last 7 check-ins
	if len(in.Checkins) > 0 {
		recent := in.Checkins
		if len(recent) > constants.ScoreCheckinWindow {
			recent = recent[len(recent)-constants.ScoreCheckinWindow:]
		}
		if avgEnergy, ok := axisAverage(recent, constants.AxisEnergy); ok {
			score += (avgEnergy - 1) / 4 * constants.ScoreAxisWeight
		}
		if avgStress, ok := axisAverage(recent, constants.AxisStress); ok {
			score += (5 - avgStress) / 4 * constants.ScoreAxisWeight
		}
	}

	// Streak bonus: 2 points per day, capped at 10
	bonus := in.Streak * constants.ScoreStreakPerDay
	if bonus > constants.ScoreStreakCap {
		bonus = constants.ScoreStreakCap
	}
	score += float64(bonus)

	// Commute penalty by one-way minutes
	if in.Profile != nil {
		switch minutes := in.Profile.TotalCommuteMinutes(); {
		case minutes >= constants.CommutePenaltyHiMin:
			score -= constants.ScoreCommutePenaltyHi
		case minutes >= constants.CommutePenaltyLoMin:
			score -= constants.ScoreCommutePenaltyLo
		}
	}

	return clamp(int(math.Round(score)), 0, 100)
}

// TodaysFocus picks a single micro-action: the worst declining axis by
// priority (energy, stress, comfort), or a rotating tip selected by day
// of year so it is stable per calendar day rather than per session.
func TodaysFocus(trends models.Trends, day time.Time) string {
	switch {
	case trends.Energy.Direction == constants.TrendDeclining:
		return constants.FocusEnergyPrompt
	case trends.Stress.Direction == constants.TrendDeclining:
		return constants.FocusStressPrompt
	case trends.Comfort.Direction == constants.TrendDeclining:
		return constants.FocusComfortPrompt
	}
	return constants.FocusTips[utils.DayOfYear(day)%len(constants.FocusTips)]
}

func axisAverage(checkins []models.CheckinRecord, axis constants.RatingAxis) (float64, bool) {
	sum, n := 0, 0
	for _, c := range checkins {
		if v, ok := c.Rating(axis); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
