package model

import "math"

// Grades maps a subject name to the grade earned in it.
type Grades map[string]float64

// Clone returns an independent copy of the grade map.
func (g Grades) Clone() Grades {
	if g == nil {
		return nil
	}
	out := make(Grades, len(g))
	for subject, grade := range g {
		out[subject] = grade
	}
	return out
}

// Student is one roster record. Validation tags are checked by
// go-playground/validator at the roster boundary.
type Student struct {
	Name   string `json:"name" validate:"required"`
	Grades Grades `json:"grades" validate:"omitempty,dive,keys,required,endkeys,gte=0,lte=100"`
}

// Roster maps student names to their grades. This is also the shape of
// the persisted JSON document: {"Alice": {"Math": 90, "Science": 85}}.
type Roster map[string]Grades

// Clone deep-copies the roster so callers can hand out snapshots
// without exposing internal state.
func (r Roster) Clone() Roster {
	out := make(Roster, len(r))
	for name, grades := range r {
		out[name] = grades.Clone()
	}
	return out
}

// ValidGrade reports whether g is a usable grade value.
// NaN fails both comparisons, so non-numeric input is rejected too.
func ValidGrade(g float64) bool {
	return !math.IsNaN(g) && g >= 0 && g <= 100
}
