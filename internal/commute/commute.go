package commute

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/commutewell/internal/constants"
	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/storage"
	"github.com/julianstephens/commutewell/internal/utils"
	"github.com/julianstephens/commutewell/internal/validation"
	"github.com/julianstephens/commutewell/internal/watch"
)

// Tracker manages the standing commute profile and the per-day log of
// commutes actually made.
type Tracker struct {
	store *storage.Store
	hub   *watch.Hub
}

// NewTracker creates a commute tracker over the store. hub may be nil.
func NewTracker(store *storage.Store, hub *watch.Hub) *Tracker {
	return &Tracker{store: store, hub: hub}
}

// SaveProfile validates and upserts the singleton profile.
func (t *Tracker) SaveProfile(p models.CommuteProfile) error {
	if err := validation.Profile(p); err != nil {
		return err
	}
	if err := t.store.SaveProfile(p); err != nil {
		return fmt.Errorf("failed to save commute profile: %w", err)
	}
	t.hub.Notify(watch.Change{Kind: watch.KindCommute})
	return nil
}

// Profile returns the active profile, if one has been configured.
func (t *Tracker) Profile() (models.CommuteProfile, bool, error) {
	return t.store.GetProfile()
}

// LogDay records that the commute was made on the given date, copying
// the standing profile into a dated entry. Re-logging a date replaces
// its entry. Requires both cities to be configured.
func (t *Tracker) LogDay(date, notes string) (models.CommuteLogEntry, error) {
	profile, found, err := t.store.GetProfile()
	if err != nil {
		return models.CommuteLogEntry{}, err
	}
	if !found {
		return models.CommuteLogEntry{}, validation.ProfileForLogging(models.CommuteProfile{})
	}
	if err := validation.ProfileForLogging(profile); err != nil {
		return models.CommuteLogEntry{}, err
	}

	entry := models.CommuteLogEntry{
		ID:             uuid.NewString(),
		Date:           date,
		Timestamp:      time.Now().Format(time.RFC3339),
		FromCity:       profile.FromCity,
		ToCity:         profile.ToCity,
		CommuteHours:   profile.CommuteHours,
		CommuteMinutes: profile.CommuteMinutes,
		DaysPerWeek:    profile.DaysPerWeek,
		Notes:          utils.Truncate(notes, constants.NoteMaxLen),
	}
	if err := t.store.SaveCommuteEntry(entry); err != nil {
		return models.CommuteLogEntry{}, fmt.Errorf("failed to save commute entry: %w", err)
	}
	t.hub.Notify(watch.Change{Kind: watch.KindCommute, Date: date})
	return entry, nil
}

// Entry returns the logged commute for a date, if any.
func (t *Tracker) Entry(date string) (models.CommuteLogEntry, bool, error) {
	return t.store.GetCommuteEntry(date)
}

// Entries returns the full commute history ordered by date.
func (t *Tracker) Entries() ([]models.CommuteLogEntry, error) {
	return t.store.GetAllCommuteEntries()
}
