package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/wellness"
)

var (
	scoreCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 3)

	scoreValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	scoreLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Italic(true)
)

type ScoreCmd struct {
	JSON bool `help:"Print the raw snapshot as JSON."`
}

func (c *ScoreCmd) Run(ctx *Context) error {
	snapshot := wellness.NewBuilder(ctx.Store).Snapshot(time.Now())

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}

	fmt.Println(renderScoreCard(snapshot))
	return nil
}

func renderScoreCard(s models.WellnessSnapshot) string {
	body := fmt.Sprintf("%s %s\n\n", scoreLabelStyle.Render("Wellness score:"),
		scoreValueStyle.Render(fmt.Sprintf("%d / 100", s.WellnessScore)))
	body += fmt.Sprintf("%s %d day(s)\n", scoreLabelStyle.Render("Streak:"), s.Streak)
	body += fmt.Sprintf("%s %d of %d\n", scoreLabelStyle.Render("Tasks today:"), s.TasksCompleted, s.TotalTasks)
	body += fmt.Sprintf("%s %.1f h/week\n\n", scoreLabelStyle.Render("Commute:"), s.CommuteTime)
	body += fmt.Sprintf("%s energy %s %s  stress %s %s  comfort %s %s\n\n",
		scoreLabelStyle.Render("Trends:"),
		s.Trends.Energy.Glyph, s.Trends.Energy.Direction,
		s.Trends.Stress.Glyph, s.Trends.Stress.Direction,
		s.Trends.Comfort.Glyph, s.Trends.Comfort.Direction)
	body += focusStyle.Render("Today's focus: " + s.TodaysFocus)
	return scoreCardStyle.Render(body)
}
