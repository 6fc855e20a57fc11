package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradebook/internal/model"
	"gradebook/internal/service"
)

func setupReports(t *testing.T, roster model.Roster) (*service.RosterService, *service.ReportService) {
	t.Helper()
	rs := service.NewRosterService()
	rs.Replace(roster)
	return rs, service.NewReportService(rs)
}

func TestStudentAverage(t *testing.T) {
	_, reports := setupReports(t, model.Roster{
		"Alice": {"Math": 90, "Science": 85},
		"Bob":   {"Math": 70},
		"Carol": {},
	})

	avg, err := reports.StudentAverage("Alice")
	require.NoError(t, err)
	assert.InDelta(t, 87.5, avg, 1e-9)

	_, err = reports.StudentAverage("Nobody")
	assert.ErrorIs(t, err, model.ErrStudentNotFound)

	// Zero subjects is "no data", not a division by zero.
	_, err = reports.StudentAverage("Carol")
	assert.ErrorIs(t, err, model.ErrNoGrades)
}

func TestSubjectAverageExcludesStudentsWithoutSubject(t *testing.T) {
	_, reports := setupReports(t, model.Roster{
		"Alice": {"Math": 90},
		"Bob":   {"Math": 70, "Science": 80},
	})

	math, err := reports.SubjectAverage("Math")
	require.NoError(t, err)
	assert.InDelta(t, 80, math, 1e-9)

	science, err := reports.SubjectAverage("Science")
	require.NoError(t, err)
	assert.InDelta(t, 80, science, 1e-9, "only Bob has Science")

	_, err = reports.SubjectAverage("History")
	assert.ErrorIs(t, err, model.ErrNoGrades)
}

func TestAllSubjectAverages(t *testing.T) {
	_, reports := setupReports(t, model.Roster{
		"Alice": {"Math": 80, "Eng": 60},
		"Bob":   {"Math": 100},
	})

	assert.Equal(t, map[string]float64{"Math": 90, "Eng": 60}, reports.AllSubjectAverages())
}

func TestAllSubjectAveragesEmptyRoster(t *testing.T) {
	_, reports := setupReports(t, model.Roster{})
	assert.Empty(t, reports.AllSubjectAverages())
}

func TestRenderRecordsEmpty(t *testing.T) {
	_, reports := setupReports(t, model.Roster{})

	var buf strings.Builder
	require.NoError(t, reports.RenderRecords(&buf))
	assert.Equal(t, "No records to display.\n", buf.String())
}

func TestRenderRecords(t *testing.T) {
	_, reports := setupReports(t, model.Roster{
		"Alice": {"Math": 80, "Eng": 60},
		"Bob":   {"Math": 100},
	})

	var buf strings.Builder
	require.NoError(t, reports.RenderRecords(&buf))
	out := buf.String()

	assert.Contains(t, out, "STUDENT RECORDS")
	assert.Contains(t, out, "Student")
	assert.Contains(t, out, "Average")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "70.00", "Alice's average")
	assert.Contains(t, out, "Subject Avg")
	assert.Contains(t, out, "90.00", "Math average")

	// Bob has no Eng grade; his row carries a placeholder.
	bobLine := ""
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Bob") {
			bobLine = line
		}
	}
	require.NotEmpty(t, bobLine)
	assert.Contains(t, bobLine, "-")
}

func TestAveragesAreDeterministic(t *testing.T) {
	roster := model.Roster{
		"Alice": {"Math": 80.1, "Eng": 60.2, "Art": 33.3},
		"Bob":   {"Math": 99.9, "Art": 66.6},
		"Carol": {"Art": 12.5},
	}
	_, reports := setupReports(t, roster)
	first := reports.AllSubjectAverages()

	for i := 0; i < 100; i++ {
		_, again := setupReports(t, roster)
		assert.Equal(t, first, again.AllSubjectAverages())
	}
}
