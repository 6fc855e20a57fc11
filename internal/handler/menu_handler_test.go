package handler_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook/internal/handler"
	"gradebook/internal/model"
	"gradebook/internal/service"
	"gradebook/internal/store"
)

func newMenu(t *testing.T, input string) (*handler.MenuHandler, *service.RosterService, *strings.Builder, *store.JSONStore) {
	t.Helper()
	roster := service.NewRosterService()
	reports := service.NewReportService(roster)
	importer := service.NewImportService(roster)
	st := store.NewJSONStore(filepath.Join(t.TempDir(), "students.json"))

	var out strings.Builder
	menu := handler.NewMenuHandler(roster, reports, importer, st, 1, strings.NewReader(input), &out)
	return menu, roster, &out, st
}

func TestMenuAddDisplayExit(t *testing.T) {
	input := "1\nIvy\nMath=85, Science=90\n4\n9\n"
	menu, roster, out, _ := newMenu(t, input)

	require.NoError(t, menu.Run())

	assert.Equal(t, model.Grades{"Math": 85, "Science": 90}, roster.Snapshot()["Ivy"])
	assert.Contains(t, out.String(), "Added.")
	assert.Contains(t, out.String(), "Ivy")
	assert.Contains(t, out.String(), "87.50")
	assert.Contains(t, out.String(), "Bye.")
}

func TestMenuSaveThenLoad(t *testing.T) {
	menu, roster, out, st := newMenu(t, "1\nAlice\nMath=90\n5\n3\nAlice\n6\n9\n")

	require.NoError(t, menu.Run())

	assert.Contains(t, out.String(), "Saved.")
	assert.Contains(t, out.String(), "Loaded 1 students.")
	assert.Equal(t, model.Roster{"Alice": {"Math": 90}}, roster.Snapshot())

	persisted, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, model.Roster{"Alice": {"Math": 90}}, persisted)
}

func TestMenuReportsErrorsAndKeepsRunning(t *testing.T) {
	// Deleting a missing student fails, the loop continues, exit still works.
	menu, _, out, _ := newMenu(t, "3\nNobody\n9\n")

	require.NoError(t, menu.Run())

	assert.Contains(t, out.String(), "Error: student not found")
	assert.Contains(t, out.String(), "Bye.")
}

func TestMenuUnknownChoice(t *testing.T) {
	menu, _, out, _ := newMenu(t, "42\n9\n")
	require.NoError(t, menu.Run())
	assert.Contains(t, out.String(), "Unknown choice.")
}

func TestMenuSeedSampleData(t *testing.T) {
	menu, roster, out, _ := newMenu(t, "8\n9\n")
	require.NoError(t, menu.Run())

	assert.Equal(t, 8, roster.Len())
	assert.Contains(t, out.String(), "Seeded 8 sample students.")
}

func TestMenuEOFEndsRun(t *testing.T) {
	menu, _, _, _ := newMenu(t, "")
	require.NoError(t, menu.Run())
}

func TestParseGrades(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    model.Grades
		wantErr error
	}{
		{"blank", "   ", nil, nil},
		{"single pair", "Math=90", model.Grades{"Math": 90}, nil},
		{"several pairs", "Math=90, Science=85", model.Grades{"Math": 90, "Science": 85}, nil},
		{"missing equals", "Math 90", nil, model.ErrBadFormat},
		{"blank subject", "=90", nil, model.ErrInvalidSubject},
		{"bad number", "Math=ninety", nil, model.ErrInvalidGrade},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := handler.ParseGrades(tt.line)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
