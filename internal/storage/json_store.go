package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// jsonFile is the on-disk shape of the JSON backend: one map of
// raw records per kind.
type jsonFile struct {
	Version int                                   `json:"version"`
	Records map[string]map[string]json.RawMessage `json:"records"`
}

// JSONKV is a single-file KV backend. Every write rewrites the file;
// fine for a personal tracker's data volume.
type JSONKV struct {
	path string
	file *jsonFile
}

// NewJSONKV creates a JSON-file backend at the given path.
func NewJSONKV(path string) *JSONKV {
	return &JSONKV{path: path}
}

func (s *JSONKV) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.file = &jsonFile{
		Version: 1,
		Records: make(map[string]map[string]json.RawMessage),
	}
	return s.save()
}

func (s *JSONKV) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'commutewell init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.file = &jsonFile{}
	if err := json.Unmarshal(data, s.file); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.file.Records == nil {
		s.file.Records = make(map[string]map[string]json.RawMessage)
	}
	return nil
}

func (s *JSONKV) Close() error { return nil }

func (s *JSONKV) GetConfigPath() string { return s.path }

func (s *JSONKV) Get(kind, key string) ([]byte, bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, false, err
	}
	byKind, ok := s.file.Records[kind]
	if !ok {
		return nil, false, nil
	}
	data, ok := byKind[key]
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

func (s *JSONKV) Set(kind, key string, value []byte) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if s.file.Records[kind] == nil {
		s.file.Records[kind] = make(map[string]json.RawMessage)
	}
	s.file.Records[kind][key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONKV) Delete(kind, key string) error {
	if err := s.ensureLoaded(); err != nil {
		return err
	}
	if byKind, ok := s.file.Records[kind]; ok {
		delete(byKind, key)
	}
	return s.save()
}

func (s *JSONKV) List(kind string) ([][]byte, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	byKind := s.file.Records[kind]
	keys := make([]string, 0, len(byKind))
	for k := range byKind {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([][]byte, 0, len(keys))
	for _, k := range keys {
		values = append(values, byKind[k])
	}
	return values, nil
}

func (s *JSONKV) ensureLoaded() error {
	if s.file == nil {
		return s.Load()
	}
	return nil
}

func (s *JSONKV) save() error {
	data, err := json.MarshalIndent(s.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write atomically via temp file + rename
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace storage: %w", err)
	}
	return nil
}
