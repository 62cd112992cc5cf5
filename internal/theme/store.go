package theme

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// StorageKey is the fixed key the preference is stored under.
const StorageKey = "theme"

// ErrNoPreference is returned by a Store that holds no value.
var ErrNoPreference = errors.New("no theme preference stored")

// Store persists the raw preference value.
type Store interface {
	Load() (string, error)
	Save(value string) error
}

// MemoryStore keeps the preference in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	value string
	set   bool
}

// NewMemoryStore returns a store, optionally seeded with a value.
func NewMemoryStore(initial ...string) *MemoryStore {
	s := &MemoryStore{}
	if len(initial) > 0 {
		s.value, s.set = initial[0], true
	}
	return s
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return "", ErrNoPreference
	}
	return s.value, nil
}

func (s *MemoryStore) Save(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value, s.set = value, true
	return nil
}

// FileStore keeps the preference in a JSON config file. Other keys in the
// file are preserved on save.
type FileStore struct {
	Path string
}

// DefaultFilePath returns ~/.config/folio/config.json.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "folio", "config.json"), nil
}

func (s FileStore) Load() (string, error) {
	doc, err := s.read()
	if err != nil {
		return "", err
	}
	raw, ok := doc[StorageKey]
	if !ok {
		return "", ErrNoPreference
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", err
	}
	return value, nil
}

func (s FileStore) Save(value string) error {
	doc, err := s.read()
	if err != nil {
		doc = map[string]json.RawMessage{}
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}
	doc[StorageKey] = encoded

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o644)
}

func (s FileStore) read() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoPreference
	}
	if err != nil {
		return nil, err
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
