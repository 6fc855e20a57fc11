package handler

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"gradebook/internal/fixture"
	"gradebook/internal/model"
	"gradebook/internal/service"
	"gradebook/internal/store"
)

// MenuHandler is the interactive surface: a numbered menu over the
// roster, report and import services. Operation errors are printed and
// the loop keeps going; only input exhaustion ends Run.
type MenuHandler struct {
	roster   *service.RosterService
	reports  *service.ReportService
	importer *service.ImportService
	store    store.Store
	seed     int64

	in  *bufio.Scanner
	out io.Writer
}

func NewMenuHandler(
	roster *service.RosterService,
	reports *service.ReportService,
	importer *service.ImportService,
	st store.Store,
	seed int64,
	in io.Reader,
	out io.Writer,
) *MenuHandler {
	return &MenuHandler{
		roster:   roster,
		reports:  reports,
		importer: importer,
		store:    st,
		seed:     seed,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

const menu = `
1) Add student
2) Update grade
3) Delete student
4) Display records
5) Save
6) Load
7) Import CSV
8) Seed sample data
9) Exit
`

// Run drives the menu until the user exits or input runs out.
func (h *MenuHandler) Run() error {
	for {
		fmt.Fprint(h.out, menu)
		choice, ok := h.prompt("Choice: ")
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = h.addStudent()
		case "2":
			err = h.updateGrade()
		case "3":
			err = h.deleteStudent()
		case "4":
			err = h.reports.RenderRecords(h.out)
		case "5":
			err = h.save()
		case "6":
			err = h.load()
		case "7":
			err = h.importCSV()
		case "8":
			h.seedSample()
		case "9":
			fmt.Fprintln(h.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(h.out, "Unknown choice.")
			continue
		}
		if err != nil {
			fmt.Fprintf(h.out, "Error: %v\n", err)
		}
	}
}

func (h *MenuHandler) addStudent() error {
	name, ok := h.prompt("Name: ")
	if !ok {
		return nil
	}
	line, ok := h.prompt("Grades (Subject=90, Subject=85 or blank): ")
	if !ok {
		return nil
	}
	grades, err := ParseGrades(line)
	if err != nil {
		return err
	}
	if err := h.roster.Add(strings.TrimSpace(name), grades); err != nil {
		return err
	}
	fmt.Fprintln(h.out, "Added.")
	return nil
}

func (h *MenuHandler) updateGrade() error {
	name, ok := h.prompt("Name: ")
	if !ok {
		return nil
	}
	subject, ok := h.prompt("Subject: ")
	if !ok {
		return nil
	}
	raw, ok := h.prompt("Grade: ")
	if !ok {
		return nil
	}
	grade, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("%w: %q", model.ErrInvalidGrade, raw)
	}
	if err := h.roster.Update(strings.TrimSpace(name), strings.TrimSpace(subject), grade); err != nil {
		return err
	}
	fmt.Fprintln(h.out, "Updated.")
	return nil
}

func (h *MenuHandler) deleteStudent() error {
	name, ok := h.prompt("Name: ")
	if !ok {
		return nil
	}
	if err := h.roster.Delete(strings.TrimSpace(name)); err != nil {
		return err
	}
	fmt.Fprintln(h.out, "Deleted.")
	return nil
}

func (h *MenuHandler) save() error {
	if err := h.store.Save(h.roster.Snapshot()); err != nil {
		return err
	}
	slog.Info("roster saved", "students", h.roster.Len())
	fmt.Fprintln(h.out, "Saved.")
	return nil
}

func (h *MenuHandler) load() error {
	roster, err := h.store.Load()
	if err != nil {
		return err
	}
	h.roster.Replace(roster)
	slog.Info("roster loaded", "students", h.roster.Len())
	fmt.Fprintf(h.out, "Loaded %d students.\n", h.roster.Len())
	return nil
}

func (h *MenuHandler) importCSV() error {
	path, ok := h.prompt("CSV path: ")
	if !ok {
		return nil
	}
	rows, err := h.importer.ImportCSV(strings.TrimSpace(path))
	if err != nil {
		return err
	}
	fmt.Fprintf(h.out, "Imported %d grade rows.\n", rows)
	return nil
}

func (h *MenuHandler) seedSample() {
	h.roster.Replace(fixture.NewBuilder(h.seed).Students())
	fmt.Fprintf(h.out, "Seeded %d sample students.\n", h.roster.Len())
}

func (h *MenuHandler) prompt(label string) (string, bool) {
	fmt.Fprint(h.out, label)
	if !h.in.Scan() {
		return "", false
	}
	return h.in.Text(), true
}

// ParseGrades turns "Math=90, Science=85" into a grade map. A blank
// line means a student with no subjects yet.
func ParseGrades(line string) (model.Grades, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	grades := make(model.Grades)
	for _, pair := range strings.Split(line, ",") {
		subject, raw, found := strings.Cut(pair, "=")
		if !found {
			return nil, fmt.Errorf("%w: expected Subject=Grade, got %q", model.ErrBadFormat, strings.TrimSpace(pair))
		}
		subject = strings.TrimSpace(subject)
		if subject == "" {
			return nil, model.ErrInvalidSubject
		}
		grade, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidGrade, strings.TrimSpace(raw))
		}
		grades[subject] = grade
	}
	return grades, nil
}
