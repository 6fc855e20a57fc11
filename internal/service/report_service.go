package service

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"gradebook/internal/model"
)

// ReportService computes averages over roster snapshots. It holds no
// state of its own; every call reads one consistent snapshot.
//
// Averages are arithmetic means in float64. Summation always folds over
// names sorted ascending, so results are bit-for-bit reproducible.
type ReportService struct {
	roster *RosterService
}

func NewReportService(roster *RosterService) *ReportService {
	return &ReportService{roster: roster}
}

// StudentAverage returns the mean of all the student's grades.
// A student with zero subjects yields ErrNoGrades, never a division by
// zero.
func (s *ReportService) StudentAverage(name string) (float64, error) {
	grades, exists := s.roster.Snapshot()[name]
	if !exists {
		return 0, fmt.Errorf("%w: %s", model.ErrStudentNotFound, name)
	}
	return mean(grades)
}

// SubjectAverage returns the mean grade for subject across every
// student who has it recorded; students without the subject count in
// neither numerator nor denominator. ErrNoGrades when nobody has it.
func (s *ReportService) SubjectAverage(subject string) (float64, error) {
	snap := s.roster.Snapshot()

	collected := make(model.Grades)
	for name, grades := range snap {
		if grade, ok := grades[subject]; ok {
			collected[name] = grade
		}
	}
	return mean(collected)
}

// AllSubjectAverages maps every subject appearing in any student's
// grades to its average, computed over a single snapshot.
func (s *ReportService) AllSubjectAverages() map[string]float64 {
	snap := s.roster.Snapshot()

	totals := make(map[string]float64)
	counts := make(map[string]int)
	for _, name := range sortedNames(snap) {
		grades := snap[name]
		for _, subject := range sortedSubjects(grades) {
			totals[subject] += grades[subject]
			counts[subject]++
		}
	}

	averages := make(map[string]float64, len(totals))
	for subject, total := range totals {
		averages[subject] = total / float64(counts[subject])
	}
	return averages
}

// RenderRecords writes the full record table: one row per student
// (sorted by name), one column per subject (sorted union), a trailing
// per-student average column and a closing per-subject average row.
// Missing grades and empty averages render as "-".
func (s *ReportService) RenderRecords(w io.Writer) error {
	snap := s.roster.Snapshot()
	if len(snap) == 0 {
		_, err := fmt.Fprintln(w, "No records to display.")
		return err
	}

	subjects := subjectUnion(snap)
	rule := strings.Repeat("=", 70)
	thin := strings.Repeat("-", 70)

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "STUDENT RECORDS")
	fmt.Fprintln(w, rule)

	header := append(append([]string{"Student"}, subjects...), "Average")
	fmt.Fprintln(w, joinCells(header))
	fmt.Fprintln(w, thin)

	for _, name := range sortedNames(snap) {
		grades := snap[name]
		cells := []string{name}
		for _, subject := range subjects {
			if grade, ok := grades[subject]; ok {
				cells = append(cells, formatGrade(grade))
			} else {
				cells = append(cells, "-")
			}
		}
		if avg, err := mean(grades); err == nil {
			cells = append(cells, fmt.Sprintf("%.2f", avg))
		} else {
			cells = append(cells, "-")
		}
		fmt.Fprintln(w, joinCells(cells))
	}

	fmt.Fprintln(w, thin)
	averages := s.AllSubjectAverages()
	cells := []string{"Subject Avg"}
	for _, subject := range subjects {
		cells = append(cells, fmt.Sprintf("%.2f", averages[subject]))
	}
	cells = append(cells, "-")
	fmt.Fprintln(w, joinCells(cells))
	_, err := fmt.Fprintln(w, rule)
	return err
}

// mean folds grades in sorted-key order. ErrNoGrades for an empty map.
func mean(grades model.Grades) (float64, error) {
	if len(grades) == 0 {
		return 0, model.ErrNoGrades
	}
	var total float64
	for _, key := range sortedSubjects(grades) {
		total += grades[key]
	}
	return total / float64(len(grades)), nil
}

func sortedNames(r model.Roster) []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedSubjects(g model.Grades) []string {
	subjects := make([]string, 0, len(g))
	for subject := range g {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

func subjectUnion(r model.Roster) []string {
	seen := make(map[string]bool)
	for _, grades := range r {
		for subject := range grades {
			seen[subject] = true
		}
	}
	subjects := make([]string, 0, len(seen))
	for subject := range seen {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)
	return subjects
}

func formatGrade(g float64) string {
	return strconv.FormatFloat(g, 'f', -1, 64)
}

func joinCells(cells []string) string {
	padded := make([]string, len(cells))
	for i, c := range cells {
		padded[i] = fmt.Sprintf("%10s", c)
	}
	return strings.Join(padded, " | ")
}
