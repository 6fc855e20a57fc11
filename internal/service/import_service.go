package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gradebook/internal/model"
)

// ImportService bulk-loads grades from CSV files shaped as
//
//	student,subject,grade
//	Alice,Math,90
//
// Rows for the same student accumulate into one record. The whole file
// is parsed and validated before the roster is touched, so a bad row
// anywhere leaves the roster exactly as it was.
type ImportService struct {
	roster *RosterService
}

func NewImportService(roster *RosterService) *ImportService {
	return &ImportService{roster: roster}
}

// ImportCSV merges the file into the roster and returns the number of
// grade rows applied. Existing students gain/overwrite subjects; new
// students are added.
func (s *ImportService) ImportCSV(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	incoming, rows, err := parseCSV(file)
	if err != nil {
		return 0, err
	}

	existing := s.roster.Snapshot()
	for name, grades := range incoming {
		if _, exists := existing[name]; !exists {
			if err := s.roster.Add(name, nil); err != nil {
				return 0, err
			}
		}
		for subject, grade := range grades {
			if err := s.roster.Update(name, subject, grade); err != nil {
				return 0, err
			}
		}
	}

	slog.Info("csv import applied", "file", path, "rows", rows, "students", len(incoming))
	return rows, nil
}

// parseCSV reads every record and validates it up front. The first row
// must be the header.
func parseCSV(r io.Reader) (model.Roster, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	if _, err := reader.Read(); err != nil {
		return nil, 0, fmt.Errorf("%w: missing header row", model.ErrBadFormat)
	}

	incoming := make(model.Roster)
	rows := 0
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%w: line %d: %v", model.ErrBadFormat, line, err)
		}

		name := strings.TrimSpace(record[0])
		subject := strings.TrimSpace(record[1])
		if name == "" || subject == "" {
			return nil, 0, fmt.Errorf("%w: line %d: blank student or subject", model.ErrBadFormat, line)
		}
		grade, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil || !model.ValidGrade(grade) {
			return nil, 0, fmt.Errorf("%w: line %d: bad grade %q", model.ErrBadFormat, line, record[2])
		}

		if incoming[name] == nil {
			incoming[name] = make(model.Grades)
		}
		incoming[name][subject] = grade
		rows++
	}
	return incoming, rows, nil
}
