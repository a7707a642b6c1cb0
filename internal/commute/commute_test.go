package commute

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/commutewell/internal/models"
	"github.com/julianstephens/commutewell/internal/storage"
)

func testStore(t *testing.T) *storage.Store {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func validProfile() models.CommuteProfile {
	return models.CommuteProfile{
		FromCity:       "Lathrop",
		ToCity:         "San Francisco",
		CommuteHours:   1,
		CommuteMinutes: 30,
		DaysPerWeek:    5,
	}
}

func TestSaveProfile(t *testing.T) {
	tracker := NewTracker(testStore(t), nil)

	if err := tracker.SaveProfile(validProfile()); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	got, found, err := tracker.Profile()
	if err != nil || !found {
		t.Fatalf("Profile() = found %v, err %v", found, err)
	}
	if got.TotalCommuteMinutes() != 90 {
		t.Errorf("TotalCommuteMinutes() = %d, want 90", got.TotalCommuteMinutes())
	}
}

func TestSaveProfileRejectsInvalid(t *testing.T) {
	tracker := NewTracker(testStore(t), nil)

	tests := []struct {
		name   string
		mutate func(*models.CommuteProfile)
	}{
		{"negative hours", func(p *models.CommuteProfile) { p.CommuteHours = -1 }},
		{"minutes past 59", func(p *models.CommuteProfile) { p.CommuteMinutes = 60 }},
		{"zero days", func(p *models.CommuteProfile) { p.DaysPerWeek = 0 }},
		{"eight days", func(p *models.CommuteProfile) { p.DaysPerWeek = 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			if err := tracker.SaveProfile(p); err == nil {
				t.Error("SaveProfile() accepted an invalid profile")
			}
		})
	}
}

func TestLogDay(t *testing.T) {
	tracker := NewTracker(testStore(t), nil)
	if err := tracker.SaveProfile(validProfile()); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	entry, err := tracker.LogDay("2026-03-15", "rainy drive")
	if err != nil {
		t.Fatalf("LogDay() error: %v", err)
	}
	if entry.ID == "" {
		t.Error("LogDay() produced an entry without an ID")
	}
	if entry.FromCity != "Lathrop" || entry.ToCity != "San Francisco" {
		t.Errorf("entry cities = %q -> %q, want copied from profile", entry.FromCity, entry.ToCity)
	}

	got, found, err := tracker.Entry("2026-03-15")
	if err != nil || !found {
		t.Fatalf("Entry() = found %v, err %v", found, err)
	}
	if got.Notes != "rainy drive" {
		t.Errorf("Notes = %q", got.Notes)
	}
}

func TestLogDayReplacesSameDate(t *testing.T) {
	tracker := NewTracker(testStore(t), nil)
	if err := tracker.SaveProfile(validProfile()); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	if _, err := tracker.LogDay("2026-03-15", "first"); err != nil {
		t.Fatalf("first LogDay() error: %v", err)
	}
	if _, err := tracker.LogDay("2026-03-15", "second"); err != nil {
		t.Fatalf("second LogDay() error: %v", err)
	}

	entries, err := tracker.Entries()
	if err != nil {
		t.Fatalf("Entries() error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries for one date, want 1", len(entries))
	}
	if entries[0].Notes != "second" {
		t.Errorf("Notes = %q, want the re-logged value", entries[0].Notes)
	}
}

func TestLogDayRequiresProfile(t *testing.T) {
	tracker := NewTracker(testStore(t), nil)

	if _, err := tracker.LogDay("2026-03-15", ""); err == nil {
		t.Error("LogDay() succeeded without a profile")
	}

	// Cities are required even when a profile exists.
	partial := validProfile()
	partial.FromCity = ""
	if err := tracker.SaveProfile(partial); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}
	if _, err := tracker.LogDay("2026-03-15", ""); err == nil {
		t.Error("LogDay() succeeded without an origin city")
	}
}
