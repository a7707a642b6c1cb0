package models

import "github.com/julianstephens/commutewell/internal/constants"

// Task is a single checklist item within a day's plan.
type Task struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// TaskDay is one calendar day's wellness checklist, grouped by commute
// phase. Groups keep their order; toggling only flips Completed.
type TaskDay struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Morning []Task `json:"morning"`
	Drive   []Task `json:"drive"`
	Evening []Task `json:"evening"`
}

// Group returns the task list for a group. The returned slice aliases
// the day's backing array so callers can mutate tasks in place.
func (d *TaskDay) Group(group constants.TaskGroup) []Task {
	switch group {
	case constants.GroupMorning:
		return d.Morning
	case constants.GroupDrive:
		return d.Drive
	case constants.GroupEvening:
		return d.Evening
	}
	return nil
}

// Counts returns completed and total task counts across all groups.
func (d *TaskDay) Counts() (completed, total int) {
	for _, group := range [][]Task{d.Morning, d.Drive, d.Evening} {
		for _, t := range group {
			total++
			if t.Completed {
				completed++
			}
		}
	}
	return completed, total
}

// DefaultTaskDay materializes the fixed starter checklist for a date.
// Each day starts fresh; completion state never carries over.
func DefaultTaskDay(date string) TaskDay {
	return TaskDay{
		Date: date,
		Morning: []Task{
			{ID: "stretch", Name: "5-min stretch routine"},
			{ID: "breakfast", Name: "Healthy breakfast packed"},
		},
		Drive: []Task{
			{ID: "posture", Name: "Posture check (alert @45min)"},
			{ID: "breathing", Name: "Breathing exercise at rest stop"},
		},
		Evening: []Task{
			{ID: "walk", Name: "10-min walk before dinner"},
		},
	}
}
