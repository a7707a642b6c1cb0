package storage

import (
	"encoding/json"

	"github.com/julianstephens/commutewell/internal/logger"
	"github.com/julianstephens/commutewell/internal/models"
)

// Store layers typed accessors over a KV backend. Stored blobs that no
// longer parse are treated as absent rather than surfaced as errors, so
// a corrupt record can never take the whole app down.
type Store struct {
	kv KV
}

// New wraps a KV backend in the typed store.
func New(kv KV) *Store {
	return &Store{kv: kv}
}

func (s *Store) Init() error  { return s.kv.Init() }
func (s *Store) Load() error  { return s.kv.Load() }
func (s *Store) Close() error { return s.kv.Close() }

func (s *Store) GetConfigPath() string { return s.kv.GetConfigPath() }

func (s *Store) put(kind, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(kind, key, data)
}

// get unmarshals the record at (kind, key) into out. A missing record
// and an unparsable one both report found=false.
func (s *Store) get(kind, key string, out interface{}) (bool, error) {
	data, found, err := s.kv.Get(kind, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("Discarding corrupt record", "kind", kind, "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// SaveCheckin upserts the check-in for its date.
func (s *Store) SaveCheckin(c models.CheckinRecord) error {
	return s.put(KindCheckin, c.Date, c)
}

func (s *Store) GetCheckin(date string) (models.CheckinRecord, bool, error) {
	var c models.CheckinRecord
	found, err := s.get(KindCheckin, date, &c)
	return c, found, err
}

// GetAllCheckins returns every check-in ordered by date ascending.
// Corrupt entries are skipped.
func (s *Store) GetAllCheckins() ([]models.CheckinRecord, error) {
	values, err := s.kv.List(KindCheckin)
	if err != nil {
		return nil, err
	}
	checkins := make([]models.CheckinRecord, 0, len(values))
	for _, data := range values {
		var c models.CheckinRecord
		if err := json.Unmarshal(data, &c); err != nil {
			logger.Warn("Skipping corrupt check-in record", "error", err)
			continue
		}
		checkins = append(checkins, c)
	}
	return checkins, nil
}

// SaveTaskDay upserts the checklist for its date.
func (s *Store) SaveTaskDay(d models.TaskDay) error {
	return s.put(KindTaskDay, d.Date, d)
}

func (s *Store) GetTaskDay(date string) (models.TaskDay, bool, error) {
	var d models.TaskDay
	found, err := s.get(KindTaskDay, date, &d)
	return d, found, err
}

// SaveProfile upserts the singleton commute profile.
func (s *Store) SaveProfile(p models.CommuteProfile) error {
	return s.put(KindProfile, ProfileKey, p)
}

func (s *Store) GetProfile() (models.CommuteProfile, bool, error) {
	var p models.CommuteProfile
	found, err := s.get(KindProfile, ProfileKey, &p)
	return p, found, err
}

// SaveCommuteEntry upserts the commute log entry for its date.
func (s *Store) SaveCommuteEntry(e models.CommuteLogEntry) error {
	return s.put(KindCommuteLog, e.Date, e)
}

func (s *Store) GetCommuteEntry(date string) (models.CommuteLogEntry, bool, error) {
	var e models.CommuteLogEntry
	found, err := s.get(KindCommuteLog, date, &e)
	return e, found, err
}

// GetAllCommuteEntries returns the commute log ordered by date ascending.
func (s *Store) GetAllCommuteEntries() ([]models.CommuteLogEntry, error) {
	values, err := s.kv.List(KindCommuteLog)
	if err != nil {
		return nil, err
	}
	entries := make([]models.CommuteLogEntry, 0, len(values))
	for _, data := range values {
		var e models.CommuteLogEntry
		if err := json.Unmarshal(data, &e); err != nil {
			logger.Warn("Skipping corrupt commute log entry", "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// SaveRoute upserts a route by ID.
func (s *Store) SaveRoute(r models.CommuteRoute) error {
	return s.put(KindRoute, r.ID, r)
}

func (s *Store) GetRoute(id string) (models.CommuteRoute, bool, error) {
	var r models.CommuteRoute
	found, err := s.get(KindRoute, id, &r)
	return r, found, err
}

func (s *Store) GetAllRoutes() ([]models.CommuteRoute, error) {
	values, err := s.kv.List(KindRoute)
	if err != nil {
		return nil, err
	}
	routes := make([]models.CommuteRoute, 0, len(values))
	for _, data := range values {
		var r models.CommuteRoute
		if err := json.Unmarshal(data, &r); err != nil {
			logger.Warn("Skipping corrupt route record", "error", err)
			continue
		}
		routes = append(routes, r)
	}
	return routes, nil
}
