package wellness

import (
	"time"

	"github.com/julianstephens/commutewell/internal/checkin"
	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/logger"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/utils"
)

// Builder assembles wellness snapshots from the store. Every read
// failure degrades to a safe default so a snapshot is always produced;
// the dashboard must never blank because one record wouldn't load.
type Builder struct {
	store *storage.Store
}

// NewBuilder creates a snapshot builder over the store.
func NewBuilder(store *storage.Store) *Builder {
	return &Builder{store: store}
}

// Snapshot recomputes the full wellness projection as of now. The
// result depends only on stored records and the calendar day, so
// recomputing with unchanged data yields an identical snapshot.
func (b *Builder) Snapshot(now time.Time) models.WellnessSnapshot {
	today := utils.DateKey(now)

	checkins, err := b.store.GetAllCheckins()
	if err != nil {
		logger.Warn("Snapshot falling back to empty check-in log", "error", err)
		checkins = nil
	}

	dates := make(map[string]bool, len(checkins))
	for _, c := range checkins {
		dates[c.Date] = true
	}
	streak := Streak(dates, now)

	completed, total := 0, 0
	if day, found, err := b.store.GetTaskDay(today); err == nil && found {
		completed, total = day.Counts()
	} else if err != nil {
		logger.Warn("Snapshot falling back to empty task day", "error", err)
	}
	if total == 0 {
		total = constants.FallbackTotalTasks
	}

	var profile *models.CommuteProfile
	weeklyHours := 0.0
	if p, found, err := b.store.GetProfile(); err == nil && found {
		profile = &p
		weeklyHours = p.WeeklyCommuteHours()
	} else if err != nil {
		logger.Warn("Snapshot falling back to no commute profile", "error", err)
	}

	trends := checkin.TrendsOf(checkins)

	return models.WellnessSnapshot{
		WellnessScore: ComputeScore(Inputs{
			TasksCompleted: completed,
			TotalTasks:     total,
			Checkins:       checkins,
			Profile:        profile,
			Streak:         streak,
		}),
		TodaysFocus:    TodaysFocus(trends, now),
		Streak:         streak,
		TasksCompleted: completed,
		TotalTasks:     total,
		CommuteTime:    weeklyHours,
		Trends:         trends,
	}
}
