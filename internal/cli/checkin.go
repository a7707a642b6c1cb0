package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/commutewell/internal/checkin"
	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/utils"
)

type CheckinCmd struct {
	Energy  int    `short:"e" help:"Energy rating (1-5)." default:"0"`
	Stress  int    `short:"s" help:"Stress rating (1-5)." default:"0"`
	Comfort int    `short:"c" help:"Comfort rating (1-5)." default:"0"`
	Note    string `short:"n" help:"Optional note (max 200 chars)."`
	Date    string `help:"Date to record (YYYY-MM-DD)." default:""`
}

func (c *CheckinCmd) Validate() error {
	for _, v := range []int{c.Energy, c.Stress, c.Comfort} {
		if v != 0 && (v < constants.RatingMin || v > constants.RatingMax) {
			return fmt.Errorf("ratings must be between %d and %d", constants.RatingMin, constants.RatingMax)
		}
	}
	if c.Date != "" && !utils.ValidDateKey(c.Date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *CheckinCmd) Run(ctx *Context) error {
	ratings := map[constants.RatingAxis]int{}
	if c.Energy > 0 {
		ratings[constants.AxisEnergy] = c.Energy
	}
	if c.Stress > 0 {
		ratings[constants.AxisStress] = c.Stress
	}
	if c.Comfort > 0 {
		ratings[constants.AxisComfort] = c.Comfort
	}

	note := c.Note
	if len(ratings) == 0 {
		// No flags given: run the interactive form
		var err error
		ratings, note, err = checkinForm()
		if err != nil {
			return err
		}
	}

	date := c.Date
	if date == "" {
		date = utils.Today()
	}

	log := checkin.NewLog(ctx.Store, ctx.Hub)
	record, err := log.Record(date, ratings, note)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Check-in saved for %s (average %.1f)\n", record.Date, record.AverageRating)
	return nil
}

// checkinForm collects ratings interactively. "Skip" leaves an axis
// unrated; at least one axis must be rated to submit.
func checkinForm() (map[constants.RatingAxis]int, string, error) {
	ratingOptions := func() []huh.Option[int] {
		opts := []huh.Option[int]{huh.NewOption("Skip", 0)}
		for i := constants.RatingMin; i <= constants.RatingMax; i++ {
			opts = append(opts, huh.NewOption(strconv.Itoa(i), i))
		}
		return opts
	}

	var energy, stress, comfort int
	var note string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("⚡ Energy level").
				Options(ratingOptions()...).
				Value(&energy),
			huh.NewSelect[int]().
				Title("😤 Stress level").
				Options(ratingOptions()...).
				Value(&stress),
			huh.NewSelect[int]().
				Title("🪑 Comfort level").
				Options(ratingOptions()...).
				Value(&comfort),
			huh.NewText().
				Title("Note (optional)").
				CharLimit(constants.NoteMaxLen).
				Value(&note),
		),
	)
	if err := form.Run(); err != nil {
		return nil, "", err
	}

	ratings := map[constants.RatingAxis]int{}
	if energy > 0 {
		ratings[constants.AxisEnergy] = energy
	}
	if stress > 0 {
		ratings[constants.AxisStress] = stress
	}
	if comfort > 0 {
		ratings[constants.AxisComfort] = comfort
	}
	if len(ratings) == 0 {
		return nil, "", fmt.Errorf("at least one rating is required")
	}
	return ratings, note, nil
}
