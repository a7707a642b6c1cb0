package checkin

import (
	"fmt"
	"time"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/utils"
	"github.com/julianstephens/commutewell/internal/validation"
	"github.com/julianstephens/commutewell/internal/watch"
)

// Log is the check-in component: daily mood records plus trend math.
type Log struct {
	store *storage.Store
	hub   *watch.Hub
}

// NewLog creates a check-in log over the store. hub may be nil.
func NewLog(store *storage.Store, hub *watch.Hub) *Log {
	return &Log{store: store, hub: hub}
}

// Record upserts the check-in for a date. The note is truncated to the
// cap, the average is recomputed, and an empty rating set is rejected
// without touching the store.
func (l *Log) Record(date string, ratings map[constants.RatingAxis]int, note string) (models.CheckinRecord, error) {
	if err := validation.Ratings(ratings); err != nil {
		return models.CheckinRecord{}, err
	}
	if !utils.ValidDateKey(date) {
		return models.CheckinRecord{}, fmt.Errorf("invalid date %q", date)
	}

	record := models.CheckinRecord{
		Date:      date,
		Timestamp: time.Now().Format(time.RFC3339),
		Ratings:   ratings,
		Note:      utils.Truncate(note, constants.NoteMaxLen),
	}
	record.AverageRating = record.ComputeAverage()

	if err := l.store.SaveCheckin(record); err != nil {
		return models.CheckinRecord{}, fmt.Errorf("failed to save check-in: %w", err)
	}
	l.hub.Notify(watch.Change{Kind: watch.KindCheckin, Date: date})
	return record, nil
}

// Get returns the check-in for a date, if any.
func (l *Log) Get(date string) (models.CheckinRecord, bool, error) {
	return l.store.GetCheckin(date)
}

// All returns every check-in ordered by date ascending.
func (l *Log) All() ([]models.CheckinRecord, error) {
	return l.store.GetAllCheckins()
}

// Trend compares an axis's average over the most recent window of
// records against the window immediately before it.
func (l *Log) Trend(axis constants.RatingAxis, window int) (constants.TrendDirection, error) {
	checkins, err := l.store.GetAllCheckins()
	if err != nil {
		return constants.TrendStable, err
	}
	return TrendOf(checkins, axis, window), nil
}

// Trends evaluates all three axes over the default window.
func (l *Log) Trends() (models.Trends, error) {
	checkins, err := l.store.GetAllCheckins()
	if err != nil {
		return models.StableTrends(), err
	}
	return TrendsOf(checkins), nil
}

// TrendOf classifies an axis's movement across two adjacent windows of
// records (not calendar days, so sparse logs still compare sensibly).
// Only records that rated the axis contribute; if either window ends up
// empty, or there are fewer than 2 records total, the axis is Stable.
// Stress has inverted polarity: going down is Improving.
func TrendOf(checkins []models.CheckinRecord, axis constants.RatingAxis, window int) constants.TrendDirection {
	if len(checkins) < 2 || window < 1 {
		return constants.TrendStable
	}

	recent := tail(checkins, window)
	prior := tail(trimTail(checkins, window), window)

	recentAvg, recentOK := axisAverage(recent, axis)
	priorAvg, priorOK := axisAverage(prior, axis)
	if !recentOK || !priorOK {
		return constants.TrendStable
	}

	diff := recentAvg - priorAvg
	if axis == constants.AxisStress {
		diff = -diff
	}

	switch {
	case diff > constants.TrendThreshold:
		return constants.TrendImproving
	case diff < -constants.TrendThreshold:
		return constants.TrendDeclining
	}
	return constants.TrendStable
}

// TrendsOf evaluates all axes over the default window with glyphs attached.
func TrendsOf(checkins []models.CheckinRecord) models.Trends {
	axisTrend := func(axis constants.RatingAxis) models.AxisTrend {
		dir := TrendOf(checkins, axis, constants.TrendWindowDays)
		return models.AxisTrend{Direction: dir, Glyph: constants.TrendGlyphs[dir]}
	}
	return models.Trends{
		Energy:  axisTrend(constants.AxisEnergy),
		Stress:  axisTrend(constants.AxisStress),
		Comfort: axisTrend(constants.AxisComfort),
	}
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

func tail(checkins []models.CheckinRecord, n int) []models.CheckinRecord {
	if len(checkins) <= n {
		return checkins
	}
	return checkins[len(checkins)-n:]
}

func trimTail(checkins []models.CheckinRecord, n int) []models.CheckinRecord {
	if len(checkins) <= n {
		return nil
	}
	return checkins[:len(checkins)-n]
}
