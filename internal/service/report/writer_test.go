package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteEmployeesCSV(t *testing.T) {
	hireDate := time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)
	position := "Engineer"
	employees := []employee.Employee{
		{
			EmployeeID: "EMP001",
			FullName:   "Alice Carter",
			Email:      "alice@example.com",
			Department: "Engineering",
			Position:   &position,
			HireDate:   &hireDate,
			Status:     employee.StatusActive,
		},
		{
			EmployeeID: "EMP002",
			FullName:   "Bob Reyes",
			Email:      "bob@example.com",
			Department: "Sales",
			Status:     employee.StatusInactive,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEmployeesCSV(&buf, employees))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Employee ID", rows[0][0])
	assert.Equal(t, []string{"EMP001", "Alice Carter", "alice@example.com", "", "Engineering", "Engineer", "2023-02-01", "Active"}, rows[1])
	assert.Equal(t, "", rows[2][6], "missing hire date stays blank")
}

func TestWriteAttendanceCSV(t *testing.T) {
	name := "Alice Carter"
	checkIn := time.Date(2024, 5, 1, 9, 15, 0, 0, time.UTC)
	hours := 7.5
	records := []attendance.Record{
		{
			EmployeeID:   "EMP001",
			EmployeeName: &name,
			Date:         time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Status:       attendance.StatusLate,
			CheckIn:      &checkIn,
			HoursWorked:  &hours,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendanceCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{"EMP001", "Alice Carter", "2024-05-01", "Late", "09:15", "", "7.50"}, rows[1])
}

func TestBuildAttendanceWorkbook(t *testing.T) {
	records := []attendance.Record{
		{
			EmployeeID: "EMP001",
			Date:       time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
		},
	}
	statsList := []attendance.Stats{
		{
			EmployeeID:           "EMP001",
			EmployeeName:         "Alice Carter",
			TotalDays:            1,
			PresentDays:          1,
			AttendancePercentage: 100,
		},
	}

	f, err := BuildAttendanceWorkbook(records, statsList)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Attendance", "A2")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", got)

	got, err = f.GetCellValue("Summary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alice Carter", got)

	// The workbook round-trips through a writer
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	reopened, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer reopened.Close()

	got, err = reopened.GetCellValue("Summary", "H2")
	require.NoError(t, err)
	assert.Equal(t, "100", got)
}
