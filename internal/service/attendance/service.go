package attendance

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/attendance"
	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepository attendance.AttendanceRepository,
	employeeRepository employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		EmployeeRepository:   employeeRepository,
	}
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Record, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return attendance.Record{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	record := attendance.Record{
		EmployeeID:  emp.EmployeeID,
		Date:        date,
		Status:      attendance.Status(req.Status),
		HoursWorked: req.HoursWorked,
		Notes:       req.Notes,
	}

	if req.CheckIn != nil {
		checkIn, ok := validator.IsValidDateTime(*req.CheckIn)
		if !ok {
			return attendance.Record{}, validator.ValidationErrors{{
				Field:   "check_in_time",
				Message: "check_in_time must be an ISO8601 timestamp",
			}}
		}
		record.CheckIn = &checkIn
	}
	if req.CheckOut != nil {
		checkOut, ok := validator.IsValidDateTime(*req.CheckOut)
		if !ok {
			return attendance.Record{}, validator.ValidationErrors{{
				Field:   "check_out_time",
				Message: "check_out_time must be an ISO8601 timestamp",
			}}
		}
		record.CheckOut = &checkOut
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to save attendance: %w", err)
	}

	return saved, nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, error) {
	records, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return records, nil
}

// StatsForEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StatsForEmployee(ctx context.Context, employeeID string) (attendance.Stats, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("failed to get employee: %w", err)
	}

	records, err := s.AttendanceRepository.ListByEmployee(ctx, emp.EmployeeID)
	if err != nil {
		return attendance.Stats{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	dir := employee.NewDirectory([]employee.Employee{emp})
	statsList, err := Summarize(records, dir)
	if err != nil {
		return attendance.Stats{}, err
	}

	// No records yet: zero-filled summary, not an error
	if len(statsList) == 0 {
		return attendance.Stats{
			EmployeeID:   emp.EmployeeID,
			EmployeeName: emp.FullName,
		}, nil
	}

	return statsList[0], nil
}

// DepartmentStats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DepartmentStats(ctx context.Context) ([]attendance.DepartmentStats, error) {
	employees, err := s.EmployeeRepository.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	dir := employee.NewDirectory(employees)

	records, err := s.AttendanceRepository.List(ctx, attendance.AttendanceFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	statsList, err := Summarize(records, dir)
	if err != nil {
		return nil, err
	}

	return DepartmentRollup(statsList, dir), nil
}
