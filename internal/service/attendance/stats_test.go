package attendance

import (
	"testing"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2024, 5, d, 0, 0, 0, 0, time.UTC)
}

func records(employeeID string, statuses ...attendance.Status) []attendance.Record {
	out := make([]attendance.Record, len(statuses))
	for i, status := range statuses {
		out[i] = attendance.Record{
			EmployeeID: employeeID,
			Date:       day(i + 1),
			Status:     status,
		}
	}
	return out
}

func testDirectory() employee.Directory {
	return employee.NewDirectory([]employee.Employee{
		{EmployeeID: "EMP001", FullName: "Alice Carter", Department: "Engineering"},
		{EmployeeID: "EMP002", FullName: "Bob Reyes", Department: "Engineering"},
		{EmployeeID: "EMP003", FullName: "Carol Osei", Department: "Sales"},
	})
}

func TestSummarize_CountsAndPercentage(t *testing.T) {
	recs := records("EMP001",
		attendance.StatusPresent,
		attendance.StatusPresent,
		attendance.StatusAbsent,
		attendance.StatusLate,
	)

	stats, err := Summarize(recs, testDirectory())
	require.NoError(t, err)
	require.Len(t, stats, 1)

	got := stats[0]
	assert.Equal(t, "EMP001", got.EmployeeID)
	assert.Equal(t, "Alice Carter", got.EmployeeName)
	assert.Equal(t, 4, got.TotalDays)
	assert.Equal(t, 2, got.PresentDays)
	assert.Equal(t, 1, got.AbsentDays)
	assert.Equal(t, 1, got.LateDays)
	assert.Equal(t, 0, got.HalfDays)
	// Late counts toward the denominator but not the numerator: 2/4
	assert.Equal(t, 50.00, got.AttendancePercentage)
}

func TestSummarize_HalfDaysCountAsAttended(t *testing.T) {
	recs := records("EMP001",
		attendance.StatusPresent,
		attendance.StatusHalfDay,
		attendance.StatusAbsent,
	)

	stats, err := Summarize(recs, testDirectory())
	require.NoError(t, err)
	require.Len(t, stats, 1)

	// (1 present + 1 half) / 3 = 66.67
	assert.Equal(t, 66.67, stats[0].AttendancePercentage)
}

func TestSummarize_NoRecords(t *testing.T) {
	stats, err := Summarize(nil, testDirectory())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestSummarize_GroupsByEmployee(t *testing.T) {
	recs := append(
		records("EMP002", attendance.StatusPresent, attendance.StatusAbsent),
		records("EMP001", attendance.StatusPresent)...,
	)

	stats, err := Summarize(recs, testDirectory())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by employee ID
	assert.Equal(t, "EMP001", stats[0].EmployeeID)
	assert.Equal(t, 1, stats[0].TotalDays)
	assert.Equal(t, "EMP002", stats[1].EmployeeID)
	assert.Equal(t, 2, stats[1].TotalDays)
}

func TestSummarize_MissingDirectoryEntry(t *testing.T) {
	recs := append(
		records("EMP001", attendance.StatusPresent),
		records("GHOST", attendance.StatusPresent)...,
	)

	stats, err := Summarize(recs, testDirectory())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// The unknown employee is still summarized, just without a name
	assert.Equal(t, "Alice Carter", stats[0].EmployeeName)
	assert.Equal(t, "GHOST", stats[1].EmployeeID)
	assert.Empty(t, stats[1].EmployeeName)
	assert.Equal(t, 100.00, stats[1].AttendancePercentage)
}

func TestSummarize_MalformedRecordAbortsBatch(t *testing.T) {
	recs := []attendance.Record{
		{EmployeeID: "EMP001", Date: day(1), Status: attendance.StatusPresent},
		{EmployeeID: "  ", Date: day(2), Status: attendance.StatusPresent},
	}

	stats, err := Summarize(recs, testDirectory())
	assert.Nil(t, stats)

	var malformed *attendance.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 1, malformed.Index)
	assert.Equal(t, "employee_id", malformed.Field)
}

func TestSummarize_MissingDateAbortsBatch(t *testing.T) {
	recs := []attendance.Record{
		{EmployeeID: "EMP001", Status: attendance.StatusPresent},
	}

	_, err := Summarize(recs, testDirectory())

	var malformed *attendance.MalformedRecordError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 0, malformed.Index)
	assert.Equal(t, "date", malformed.Field)
}

func TestDepartmentRollup_SumThenDivide(t *testing.T) {
	statsList := []attendance.Stats{
		{EmployeeID: "EMP001", TotalDays: 10, PresentDays: 8, AbsentDays: 2},
		{EmployeeID: "EMP002", TotalDays: 10, PresentDays: 4, AbsentDays: 6},
	}

	rollup := DepartmentRollup(statsList, testDirectory())
	require.Len(t, rollup, 1)

	got := rollup[0]
	assert.Equal(t, "Engineering", got.Department)
	assert.Equal(t, 20, got.TotalDays)
	assert.Equal(t, 12, got.PresentDays)
	assert.Equal(t, 8, got.AbsentDays)
	// 12/20 = 60%
	assert.Equal(t, 60.00, got.AttendanceRate)
}

func TestDepartmentRollup_UnevenRecordCounts(t *testing.T) {
	statsList := []attendance.Stats{
		{EmployeeID: "EMP001", TotalDays: 1, PresentDays: 1},
		{EmployeeID: "EMP002", TotalDays: 9, PresentDays: 0, AbsentDays: 9},
	}

	rollup := DepartmentRollup(statsList, testDirectory())
	require.Len(t, rollup, 1)

	// 1/10 = 10%, while an average of 100% and 0% would claim 50%
	assert.Equal(t, 10.00, rollup[0].AttendanceRate)
}

func TestDepartmentRollup_GroupsByDepartment(t *testing.T) {
	statsList := []attendance.Stats{
		{EmployeeID: "EMP001", TotalDays: 2, PresentDays: 2},
		{EmployeeID: "EMP003", TotalDays: 2, PresentDays: 1, AbsentDays: 1},
	}

	rollup := DepartmentRollup(statsList, testDirectory())
	require.Len(t, rollup, 2)

	// Ordered by department name
	assert.Equal(t, "Engineering", rollup[0].Department)
	assert.Equal(t, 100.00, rollup[0].AttendanceRate)
	assert.Equal(t, "Sales", rollup[1].Department)
	assert.Equal(t, 50.00, rollup[1].AttendanceRate)
}

func TestDepartmentRollup_UnknownBucket(t *testing.T) {
	statsList := []attendance.Stats{
		{EmployeeID: "EMP001", TotalDays: 4, PresentDays: 4},
		{EmployeeID: "GHOST", TotalDays: 4, PresentDays: 2, AbsentDays: 2},
	}

	rollup := DepartmentRollup(statsList, testDirectory())
	require.Len(t, rollup, 2)

	assert.Equal(t, "Engineering", rollup[0].Department)
	assert.Equal(t, UnknownDepartment, rollup[1].Department)
	assert.Equal(t, 4, rollup[1].TotalDays)
	assert.Equal(t, 50.00, rollup[1].AttendanceRate)

	// Totals reconcile with the input
	totalDays := 0
	for _, group := range rollup {
		totalDays += group.TotalDays
	}
	assert.Equal(t, 8, totalDays)
}

func TestDepartmentRollup_Empty(t *testing.T) {
	rollup := DepartmentRollup(nil, testDirectory())
	assert.Empty(t, rollup)
}
