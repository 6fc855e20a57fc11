package model

import "errors"

var (
	// ErrDuplicateStudent is returned when adding a name already on the roster.
	ErrDuplicateStudent = errors.New("student already exists")

	// ErrStudentNotFound is returned for operations on an absent student.
	ErrStudentNotFound = errors.New("student not found")

	// ErrInvalidName is returned when a student name is empty or blank.
	ErrInvalidName = errors.New("student name required")

	// ErrInvalidSubject is returned when a subject name is empty or blank.
	ErrInvalidSubject = errors.New("subject name required")

	// ErrInvalidGrade is returned when a grade is outside [0,100] or not a number.
	ErrInvalidGrade = errors.New("grade must be a number between 0 and 100")

	// ErrNoGrades is the "no data" result for averages over zero grades.
	// Averages never divide by zero; they return this instead.
	ErrNoGrades = errors.New("no grades recorded")

	// ErrBadFormat is returned when persisted or imported data cannot be
	// decoded into a valid roster. The in-memory roster is left untouched.
	ErrBadFormat = errors.New("malformed student data")
)
