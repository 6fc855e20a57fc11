package store

import (
	"encoding/json"
	"fmt"
	"os"

	"gradebook/internal/model"
)

// JSONStore persists the roster as a single JSON object keyed by
// student name: {"Alice": {"Math": 90, "Science": 85}}.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

// Save overwrites the file with the current snapshot.
func (s *JSONStore) Save(roster model.Roster) error {
	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Load parses the file into a fresh roster. Read failures come back as
// wrapped I/O errors; anything that decodes but is not a valid roster
// (bad JSON shape, blank keys, grades outside [0,100]) is ErrBadFormat.
func (s *JSONStore) Load() (model.Roster, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var roster model.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrBadFormat, err)
	}
	if err := checkRoster(roster); err != nil {
		return nil, err
	}
	return roster, nil
}
