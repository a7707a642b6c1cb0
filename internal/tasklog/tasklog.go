package tasklog

import (
	"fmt"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/validation"
	"github.com/julianstephens/commutewell/internal/watch"
)

// Log is the task checklist component. Each day's checklist starts from
// the fixed template and is mutated in place by toggles.
type Log struct {
	store *storage.Store
	hub   *watch.Hub
}

// NewLog creates a task log over the store. hub may be nil.
func NewLog(store *storage.Store, hub *watch.Hub) *Log {
	return &Log{store: store, hub: hub}
}

// Day returns the checklist for a date, materializing the default
// template without persisting it if the date has no record yet.
func (l *Log) Day(date string) (models.TaskDay, error) {
	day, found, err := l.store.GetTaskDay(date)
	if err != nil {
		return models.TaskDay{}, err
	}
	if !found {
		return models.DefaultTaskDay(date), nil
	}
	return day, nil
}

// Toggle flips the completed flag on the matching task and persists the
// day. An unknown task ID is a no-op: nothing is written, no error.
func (l *Log) Toggle(date string, group constants.TaskGroup, taskID string) error {
	if err := validation.TaskGroup(group); err != nil {
		return err
	}

	day, found, err := l.store.GetTaskDay(date)
	if err != nil {
		return err
	}
	if !found {
		day = models.DefaultTaskDay(date)
	}

	tasks := day.Group(group)
	flipped := false
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Completed = !tasks[i].Completed
			flipped = true
			break
		}
	}
	if !flipped {
		return nil
	}

	if err := l.store.SaveTaskDay(day); err != nil {
		return fmt.Errorf("failed to save task day: %w", err)
	}
	l.hub.Notify(watch.Change{Kind: watch.KindTasks, Date: date})
	return nil
}

// CompletionRatio returns (completed, total) for a date. With no record
// the total falls back to the template size so a fresh user sees a
// non-zero denominator.
func (l *Log) CompletionRatio(date string) (completed, total int, err error) {
	day, found, err := l.store.GetTaskDay(date)
	if err != nil {
		return 0, constants.FallbackTotalTasks, err
	}
	if !found {
		return 0, constants.FallbackTotalTasks, nil
	}
	completed, total = day.Counts()
	if total == 0 {
		total = constants.FallbackTotalTasks
	}
	return completed, total, nil
}
