package tui

import (
	"fmt"
	"strings"

	"github.com/julianstephens/commutewell/internal/constants"
)

func (m Model) View() string {
	if m.form != nil {
		return docStyle.Render(m.form.View())
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("commutewell · " + m.date))
	b.WriteString("\n\n")

	score := fmt.Sprintf("Score %d / 100   🔥 %d day streak   🚗 %.1f h/week",
		m.snapshot.WellnessScore, m.snapshot.Streak, m.snapshot.CommuteTime)
	trends := fmt.Sprintf("energy %s  stress %s  comfort %s",
		m.snapshot.Trends.Energy.Glyph,
		m.snapshot.Trends.Stress.Glyph,
		m.snapshot.Trends.Comfort.Glyph)
	b.WriteString(scoreStyle.Render(score + "\n" + trends))
	b.WriteString("\n\n")

	b.WriteString(focusStyle.Render("Today's focus: " + m.snapshot.TodaysFocus))
	b.WriteString("\n\n")

	row := 0
	for _, group := range constants.TaskGroups {
		b.WriteString(groupStyle.Render(string(group)))
		b.WriteString("\n")
		for _, t := range m.day.Group(group) {
			cursor := "  "
			if row == m.cursor {
				cursor = cursorStyle.Render("> ")
			}
			mark := "[ ]"
			name := t.Name
			if t.Completed {
				mark = "[x]"
				name = doneStyle.Render(name)
			}
			b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, name))
			row++
		}
	}

	b.WriteString(fmt.Sprintf("\n%d of %d done\n", m.snapshot.TasksCompleted, m.snapshot.TotalTasks))

	if m.err != nil {
		b.WriteString("\n" + statusStyle.Render("error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n" + m.help.View(keys))

	return docStyle.Render(b.String())
}
