package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// Mark records attendance for an employee on a date, replacing any
	// existing record for that date.
	Mark(ctx context.Context, req MarkAttendanceRequest) (Record, error)

	// ListAttendance retrieves records with filters.
	ListAttendance(ctx context.Context, filter AttendanceFilter) ([]Record, error)

	// StatsForEmployee computes the attendance summary for one employee
	// over all of their records.
	StatsForEmployee(ctx context.Context, employeeID string) (Stats, error)

	// DepartmentStats rolls per-employee summaries up to departments.
	DepartmentStats(ctx context.Context) ([]DepartmentStats, error)
}
