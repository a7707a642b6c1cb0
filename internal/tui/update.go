package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// initMsg triggers the first load after the program starts.
type initMsg struct{}

func initialLoad() tea.Msg { return initMsg{} }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		m.reload()
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	// While the check-in form is open it owns all input
	if m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		switch m.form.State {
		case huh.StateCompleted:
			m.submitCheckin()
			m.form = nil
			m.formValues = nil
		case huh.StateAborted:
			m.form = nil
			m.formValues = nil
			m.status = "Check-in cancelled"
		}
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Quit):
			if m.relay != nil {
				m.relay.Close()
			}
			return m, tea.Quit

		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.refs)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Toggle):
			if m.cursor < len(m.refs) {
				ref := m.refs[m.cursor]
				task := m.day.Group(ref.group)[ref.index]
				if err := m.tasks.Toggle(m.date, ref.group, task.ID); err != nil {
					m.err = err
				} else {
					m.status = ""
					m.reload()
				}
			}

		case key.Matches(msg, keys.Checkin):
			m.openCheckinForm()
			return m, m.form.Init()

		case key.Matches(msg, keys.Refresh):
			m.status = ""
			m.reload()
		}
	}

	return m, nil
}
