package database

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gradebook/internal/store"
)

// Init opens the snapshot database and migrates the grade_records table.
// A postgres-style DSN selects postgres; anything else is treated as a
// sqlite path. An empty DSN falls back to a local sqlite file.
func Init(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "gradebook.db"
	}

	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&store.GradeRecord{}); err != nil {
		return nil, err
	}
	return db, nil
}
