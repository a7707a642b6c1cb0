package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/commutewell/internal/checkin"
	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/relay"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/tasklog"
	"github.com/julianstephens/commutewell/internal/utils"
	"github.com/julianstephens/commutewell/internal/watch"
	"github.com/julianstephens/commutewell/internal/wellness"
)

// taskRef addresses one task in the flattened checklist for cursor
// navigation.
type taskRef struct {
	group constants.TaskGroup
	index int
}

// checkinFormValues backs the huh form while it is open.
type checkinFormValues struct {
	energy  int
	stress  int
	comfort int
	note    string
}

// Model is the dashboard: today's checklist, the live snapshot, and an
// inline check-in form. Every data change recomputes the snapshot and
// schedules a device push through the relay.
type Model struct {
	store    *storage.Store
	builder  *wellness.Builder
	tasks    *tasklog.Log
	checkins *checkin.Log
	relay    *relay.Relay

	date     string
	day      models.TaskDay
	snapshot models.WellnessSnapshot
	refs     []taskRef
	cursor   int

	form       *huh.Form
	formValues *checkinFormValues

	help   help.Model
	status string
	err    error
}

// NewModel builds the dashboard over the store with a device relay.
// The relay listens on the change hub: every successful write triggers
// a snapshot recompute and a debounced device push, independent of what
// the view does with the same change.
func NewModel(store *storage.Store, r *relay.Relay) Model {
	hub := watch.NewHub()
	builder := wellness.NewBuilder(store)
	hub.Subscribe(func(watch.Change) {
		if r != nil {
			r.Schedule(builder.Snapshot(time.Now()))
		}
	})

	m := Model{
		store:    store,
		builder:  builder,
		tasks:    tasklog.NewLog(store, hub),
		checkins: checkin.NewLog(store, hub),
		relay:    r,
		date:     utils.Today(),
		help:     help.New(),
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return initialLoad
}

// reload re-reads the day and recomputes the snapshot for display.
func (m *Model) reload() {
	day, err := m.tasks.Day(m.date)
	if err != nil {
		m.err = err
		return
	}
	m.day = day

	m.refs = m.refs[:0]
	for _, group := range constants.TaskGroups {
		for i := range m.day.Group(group) {
			m.refs = append(m.refs, taskRef{group: group, index: i})
		}
	}
	if m.cursor >= len(m.refs) {
		m.cursor = len(m.refs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.snapshot = m.builder.Snapshot(time.Now())
}

// openCheckinForm builds the inline huh form, pre-filled from today's
// existing check-in when there is one.
func (m *Model) openCheckinForm() {
	values := &checkinFormValues{}
	if existing, found, err := m.checkins.Get(m.date); err == nil && found {
		values.energy = existing.Ratings[constants.AxisEnergy]
		values.stress = existing.Ratings[constants.AxisStress]
		values.comfort = existing.Ratings[constants.AxisComfort]
		values.note = existing.Note
	}

	ratingOptions := func() []huh.Option[int] {
		opts := []huh.Option[int]{huh.NewOption("Skip", 0)}
		for i := constants.RatingMin; i <= constants.RatingMax; i++ {
			opts = append(opts, huh.NewOption(strconv.Itoa(i), i))
		}
		return opts
	}

	m.formValues = values
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("⚡ Energy level").
				Options(ratingOptions()...).
				Value(&values.energy),
			huh.NewSelect[int]().
				Title("😤 Stress level").
				Options(ratingOptions()...).
				Value(&values.stress),
			huh.NewSelect[int]().
				Title("🪑 Comfort level").
				Options(ratingOptions()...).
				Value(&values.comfort),
			huh.NewText().
				Title("Note (optional)").
				CharLimit(constants.NoteMaxLen).
				Value(&values.note),
		),
	)
}

// submitCheckin persists the form values. An all-skip submission is
// rejected with a status message instead of a write.
func (m *Model) submitCheckin() {
	v := m.formValues
	ratings := map[constants.RatingAxis]int{}
	if v.energy > 0 {
		ratings[constants.AxisEnergy] = v.energy
	}
	if v.stress > 0 {
		ratings[constants.AxisStress] = v.stress
	}
	if v.comfort > 0 {
		ratings[constants.AxisComfort] = v.comfort
	}

	if len(ratings) == 0 {
		m.status = "Check-in needs at least one rating"
		return
	}

	if _, err := m.checkins.Record(m.date, ratings, v.note); err != nil {
		m.err = err
		return
	}
	m.status = "Check-in saved ✅"
	m.reload()
}
