// Package store persists roster snapshots. Two backends: a flat JSON
// file (the default) and a database table via GORM.
package store

import (
	"strings"

	"gradebook/internal/model"
)

// Store saves and loads whole-roster snapshots. Load is all-or-nothing:
// on any error the returned roster is nil and nothing was applied.
type Store interface {
	Save(roster model.Roster) error
	Load() (model.Roster, error)
}

// checkRoster rejects snapshots that violate the data model before they
// reach the in-memory roster: blank names or subjects, grades outside
// [0,100], and null grade maps (a JSON `null` decodes to a nil map,
// which must never reach Update). Used by both backends on load.
func checkRoster(r model.Roster) error {
	for name, grades := range r {
		if strings.TrimSpace(name) == "" {
			return model.ErrBadFormat
		}
		if grades == nil {
			return model.ErrBadFormat
		}
		for subject, grade := range grades {
			if strings.TrimSpace(subject) == "" || !model.ValidGrade(grade) {
				return model.ErrBadFormat
			}
		}
	}
	return nil
}
