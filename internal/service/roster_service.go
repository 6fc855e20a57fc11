package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"gradebook/internal/model"
)

// RosterService owns the in-memory roster. It is an explicit instance —
// no package-level state — and assumes a single caller; embedding hosts
// must serialize access themselves.
type RosterService struct {
	students model.Roster
	validate *validator.Validate
}

func NewRosterService() *RosterService {
	return &RosterService{
		students: make(model.Roster),
		validate: validator.New(),
	}
}

// Add inserts a new student with their grades. Every input is checked
// before the roster is touched, so a failed Add changes nothing.
func (s *RosterService) Add(name string, grades model.Grades) error {
	if strings.TrimSpace(name) == "" {
		return model.ErrInvalidName
	}
	if _, exists := s.students[name]; exists {
		return fmt.Errorf("%w: %s", model.ErrDuplicateStudent, name)
	}
	for subject := range grades {
		// The validator's required key check passes whitespace-only keys.
		if strings.TrimSpace(subject) == "" {
			return model.ErrInvalidSubject
		}
	}
	if err := s.validate.Struct(model.Student{Name: name, Grades: grades}); err != nil {
		return translateValidation(err)
	}
	s.students[name] = grades.Clone()
	if s.students[name] == nil {
		s.students[name] = make(model.Grades)
	}
	return nil
}

// Update sets the grade for one of a student's subjects. The subject
// may be new for that student.
func (s *RosterService) Update(name, subject string, grade float64) error {
	if strings.TrimSpace(subject) == "" {
		return model.ErrInvalidSubject
	}
	if !model.ValidGrade(grade) {
		return fmt.Errorf("%w: got %v", model.ErrInvalidGrade, grade)
	}
	grades, exists := s.students[name]
	if !exists {
		return fmt.Errorf("%w: %s", model.ErrStudentNotFound, name)
	}
	grades[subject] = grade
	return nil
}

// Delete removes a student record.
func (s *RosterService) Delete(name string) error {
	if _, exists := s.students[name]; !exists {
		return fmt.Errorf("%w: %s", model.ErrStudentNotFound, name)
	}
	delete(s.students, name)
	return nil
}

// Snapshot returns a deep copy of the roster. Mutating the copy has no
// effect on the service.
func (s *RosterService) Snapshot() model.Roster {
	return s.students.Clone()
}

// Replace swaps in a new roster wholesale, e.g. after a load. The
// snapshot is copied, so the caller keeps no alias into the service.
// Nil grade maps become empty ones so Update can always assign.
func (s *RosterService) Replace(roster model.Roster) {
	s.students = roster.Clone()
	for name, grades := range s.students {
		if grades == nil {
			s.students[name] = make(model.Grades)
		}
	}
}

func (s *RosterService) Len() int {
	return len(s.students)
}

// translateValidation maps validator failures onto the roster's
// sentinel errors: a Name failure is a bad name, everything else is a
// bad grade entry.
func translateValidation(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.StructField() == "Name" {
				return model.ErrInvalidName
			}
		}
		return fmt.Errorf("%w: %s", model.ErrInvalidGrade, verrs[0].Namespace())
	}
	return err
}
