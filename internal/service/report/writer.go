package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/xuri/excelize/v2"
)

const dateLayout = "2006-01-02"

// WriteEmployeesCSV writes the employee roster as CSV.
func WriteEmployeesCSV(w io.Writer, employees []employee.Employee) error {
	writer := csv.NewWriter(w)

	header := []string{"Employee ID", "Full Name", "Email", "Phone", "Department", "Position", "Hire Date", "Status"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, emp := range employees {
		hireDate := ""
		if emp.HireDate != nil {
			hireDate = emp.HireDate.Format(dateLayout)
		}
		row := []string{
			emp.EmployeeID,
			emp.FullName,
			emp.Email,
			stringOrEmpty(emp.Phone),
			emp.Department,
			stringOrEmpty(emp.Position),
			hireDate,
			string(emp.Status),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteAttendanceCSV writes raw attendance records as CSV.
func WriteAttendanceCSV(w io.Writer, records []attendance.Record) error {
	writer := csv.NewWriter(w)

	header := []string{"Employee ID", "Employee Name", "Date", "Status", "Check In", "Check Out", "Hours Worked"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, rec := range records {
		checkIn := ""
		if rec.CheckIn != nil {
			checkIn = rec.CheckIn.Format("15:04")
		}
		checkOut := ""
		if rec.CheckOut != nil {
			checkOut = rec.CheckOut.Format("15:04")
		}
		hours := ""
		if rec.HoursWorked != nil {
			hours = strconv.FormatFloat(*rec.HoursWorked, 'f', 2, 64)
		}
		row := []string{
			rec.EmployeeID,
			stringOrEmpty(rec.EmployeeName),
			rec.Date.Format(dateLayout),
			string(rec.Status),
			checkIn,
			checkOut,
			hours,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// BuildAttendanceWorkbook builds an XLSX report with the raw records on one
// sheet and the per-employee summary on another. The caller owns the file
// and should Close it after writing.
func BuildAttendanceWorkbook(records []attendance.Record, statsList []attendance.Stats) (*excelize.File, error) {
	f := excelize.NewFile()

	const recordsSheet = "Attendance"
	f.SetSheetName("Sheet1", recordsSheet)

	headers := []string{"Employee ID", "Employee Name", "Date", "Status", "Hours Worked"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(recordsSheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, rec := range records {
		row := i + 2
		f.SetCellValue(recordsSheet, fmt.Sprintf("A%d", row), rec.EmployeeID)
		f.SetCellValue(recordsSheet, fmt.Sprintf("B%d", row), stringOrEmpty(rec.EmployeeName))
		f.SetCellValue(recordsSheet, fmt.Sprintf("C%d", row), rec.Date.Format(dateLayout))
		f.SetCellValue(recordsSheet, fmt.Sprintf("D%d", row), string(rec.Status))
		if rec.HoursWorked != nil {
			f.SetCellValue(recordsSheet, fmt.Sprintf("E%d", row), *rec.HoursWorked)
		}
	}

	const summarySheet = "Summary"
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("failed to create summary sheet: %w", err)
	}

	summaryHeaders := []string{"Employee ID", "Employee Name", "Total Days", "Present", "Absent", "Late", "Half Day", "Attendance %"}
	for i, header := range summaryHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		if err := f.SetCellValue(summarySheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, stats := range statsList {
		row := i + 2
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), stats.EmployeeID)
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), stats.EmployeeName)
		f.SetCellValue(summarySheet, fmt.Sprintf("C%d", row), stats.TotalDays)
		f.SetCellValue(summarySheet, fmt.Sprintf("D%d", row), stats.PresentDays)
		f.SetCellValue(summarySheet, fmt.Sprintf("E%d", row), stats.AbsentDays)
		f.SetCellValue(summarySheet, fmt.Sprintf("F%d", row), stats.LateDays)
		f.SetCellValue(summarySheet, fmt.Sprintf("G%d", row), stats.HalfDays)
		f.SetCellValue(summarySheet, fmt.Sprintf("H%d", row), stats.AttendancePercentage)
	}

	return f, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
