package cli

import (
	"fmt"

	"github.com/julianstephens/commutewell/internal/commute"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/utils"
)

type CommuteSetCmd struct {
	From    string `help:"Origin city." required:""`
	To      string `help:"Destination city." required:""`
	Hours   int    `help:"One-way commute hours." default:"0"`
	Minutes int    `help:"One-way commute minutes (0-59)." default:"15"`
	Days    int    `help:"Commute days per week (1-7)." default:"5"`
}

func (c *CommuteSetCmd) Run(ctx *Context) error {
	tracker := commute.NewTracker(ctx.Store, ctx.Hub)
	profile := models.CommuteProfile{
		FromCity:       c.From,
		ToCity:         c.To,
		CommuteHours:   c.Hours,
		CommuteMinutes: c.Minutes,
		DaysPerWeek:    c.Days,
	}
	if err := tracker.SaveProfile(profile); err != nil {
		return err
	}

	fmt.Printf("✅ Commute saved: %s → %s (%dh %dm one-way, %d days/week, %.1f h/week round trip)\n",
		profile.FromCity, profile.ToCity,
		profile.CommuteHours, profile.CommuteMinutes,
		profile.DaysPerWeek, profile.WeeklyCommuteHours())
	return nil
}

type CommuteLogCmd struct {
	Notes string `short:"n" help:"Optional note for today's commute (max 200 chars)."`
	Date  string `help:"Date to log (YYYY-MM-DD), defaults to today."`
}

func (c *CommuteLogCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = utils.Today()
	} else if !utils.ValidDateKey(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	tracker := commute.NewTracker(ctx.Store, ctx.Hub)
	entry, err := tracker.LogDay(date, c.Notes)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Commute logged for %s: %s → %s\n", entry.Date, entry.FromCity, entry.ToCity)
	return nil
}

type CommuteShowCmd struct {
	History int `help:"Number of recent log entries to show." default:"7"`
}

func (c *CommuteShowCmd) Run(ctx *Context) error {
	tracker := commute.NewTracker(ctx.Store, ctx.Hub)

	profile, found, err := tracker.Profile()
	if err != nil {
		return err
	}
	if !found {
		fmt.Println("No commute configured. Run 'commutewell commute set' first.")
		return nil
	}

	fmt.Printf("%s → %s\n", profile.FromCity, profile.ToCity)
	fmt.Printf("One-way: %dh %dm (%d min), %d days/week\n",
		profile.CommuteHours, profile.CommuteMinutes,
		profile.TotalCommuteMinutes(), profile.DaysPerWeek)
	fmt.Printf("Weekly round trip: %.1f hours\n", profile.WeeklyCommuteHours())

	entries, err := tracker.Entries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if len(entries) > c.History {
		entries = entries[len(entries)-c.History:]
	}

	fmt.Println("\nRecent log:")
	for _, e := range entries {
		line := fmt.Sprintf("  %s  %s → %s", e.Date, e.FromCity, e.ToCity)
		if e.Notes != "" {
			line += "  (" + e.Notes + ")"
		}
		fmt.Println(line)
	}
	return nil
}
