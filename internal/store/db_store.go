package store

import (
	"fmt"
	"sort"

	"gorm.io/gorm"

	"gradebook/internal/model"
)

// GradeRecord is one (student, subject, grade) row in the snapshot table.
type GradeRecord struct {
	StudentName string  `gorm:"primaryKey"`
	Subject     string  `gorm:"primaryKey"`
	Grade       float64
}

// DBStore keeps roster snapshots in a grade_records table. Same contract
// as JSONStore; the backend is selected by configuration.
type DBStore struct {
	db *gorm.DB
}

func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{db: db}
}

// Save replaces the table contents with the snapshot in one transaction.
func (s *DBStore) Save(roster model.Roster) error {
	records := flatten(roster)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&GradeRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}

func (s *DBStore) Load() (model.Roster, error) {
	var records []GradeRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	roster := make(model.Roster, len(records))
	for _, rec := range records {
		grades, ok := roster[rec.StudentName]
		if !ok {
			grades = make(model.Grades)
			roster[rec.StudentName] = grades
		}
		if rec.Subject == "" {
			// Marker row: the student exists but has no grades yet.
			continue
		}
		grades[rec.Subject] = rec.Grade
	}
	if err := checkRoster(roster); err != nil {
		return nil, err
	}
	return roster, nil
}

// flatten orders rows by (student, subject) so saves are deterministic.
// A student with no grades becomes a single empty-subject marker row,
// otherwise the round trip would drop them.
func flatten(roster model.Roster) []GradeRecord {
	var records []GradeRecord
	for name, grades := range roster {
		if len(grades) == 0 {
			records = append(records, GradeRecord{StudentName: name})
			continue
		}
		for subject, grade := range grades {
			records = append(records, GradeRecord{
				StudentName: name,
				Subject:     subject,
				Grade:       grade,
			})
		}
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].StudentName != records[j].StudentName {
			return records[i].StudentName < records[j].StudentName
		}
		return records[i].Subject < records[j].Subject
	})
	return records
}
