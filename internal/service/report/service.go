package report

import (
	"context"
	"fmt"
	"io"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	attendancesvc "github.com/hrmslite/hrms-backend-go/internal/service/attendance"
)

type ReportService interface {
	// ExportEmployeesCSV streams the employee roster as CSV.
	ExportEmployeesCSV(ctx context.Context, w io.Writer, filter employee.EmployeeFilter) error

	// ExportAttendanceCSV streams attendance records as CSV.
	ExportAttendanceCSV(ctx context.Context, w io.Writer, filter attendance.AttendanceFilter) error

	// ExportAttendanceXLSX streams an XLSX workbook with raw records and
	// the per-employee summary.
	ExportAttendanceXLSX(ctx context.Context, w io.Writer, filter attendance.AttendanceFilter) error
}

type ReportServiceImpl struct {
	employee.EmployeeRepository
	attendance.AttendanceRepository
}

func NewReportService(
	employeeRepository employee.EmployeeRepository,
	attendanceRepository attendance.AttendanceRepository,
) ReportService {
	return &ReportServiceImpl{
		EmployeeRepository:   employeeRepository,
		AttendanceRepository: attendanceRepository,
	}
}

// ExportEmployeesCSV implements ReportService.
func (s *ReportServiceImpl) ExportEmployeesCSV(ctx context.Context, w io.Writer, filter employee.EmployeeFilter) error {
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}
	return WriteEmployeesCSV(w, employees)
}

// ExportAttendanceCSV implements ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, w io.Writer, filter attendance.AttendanceFilter) error {
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list attendance: %w", err)
	}
	return WriteAttendanceCSV(w, records)
}

// ExportAttendanceXLSX implements ReportService.
func (s *ReportServiceImpl) ExportAttendanceXLSX(ctx context.Context, w io.Writer, filter attendance.AttendanceFilter) error {
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list attendance: %w", err)
	}

	employees, err := s.EmployeeRepository.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return fmt.Errorf("failed to list employees: %w", err)
	}

	statsList, err := attendancesvc.Summarize(records, employee.NewDirectory(employees))
	if err != nil {
		return err
	}

	f, err := BuildAttendanceWorkbook(records, statsList)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
