package cli

import (
	"fmt"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/tasklog"
	"github.com/julianstephens/commutewell/internal/utils"
)

type TaskListCmd struct {
	Date string `help:"Date to show (YYYY-MM-DD), defaults to today."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	} else if !utils.ValidDateKey(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	log := tasklog.NewLog(ctx.Store, ctx.Hub)
	day, err := log.Day(date)
	if err != nil {
		return err
	}

	fmt.Printf("Checklist for %s\n", date)
	for _, group := range constants.TaskGroups {
		fmt.Printf("\n%s:\n", group)
		for _, t := range day.Group(group) {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %-10s %s\n", mark, t.ID, t.Name)
		}
	}

	completed, total := day.Counts()
	fmt.Printf("\n%d of %d done\n", completed, total)
	return nil
}

type TaskToggleCmd struct {
	Group  string `arg:"" help:"Task group (morning|drive|evening)."`
	TaskID string `arg:"" help:"Task ID within the group."`
	Date   string `help:"Date to modify (YYYY-MM-DD), defaults to today."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	} else if !utils.ValidDateKey(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	log := tasklog.NewLog(ctx.Store, ctx.Hub)
	if err := log.Toggle(date, constants.TaskGroup(c.Group), c.TaskID); err != nil {
		return err
	}

	day, err := log.Day(date)
	if err != nil {
		return err
	}
	printToggled(day, constants.TaskGroup(c.Group), c.TaskID)
	return nil
}

func printToggled(day models.TaskDay, group constants.TaskGroup, taskID string) {
	for _, t := range day.Group(group) {
		if t.ID == taskID {
			state := "unchecked"
			if t.Completed {
				state = "done"
			}
			fmt.Printf("✅ %s: %s (%s)\n", t.ID, t.Name, state)
			return
		}
	}
	fmt.Printf("⚠️  No task %q in group %s; nothing changed\n", taskID, group)
}
