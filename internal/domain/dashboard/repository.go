package dashboard

import (
	"context"
	"time"
)

type EmployeeCounts struct {
	Total  int
	Active int
}

type DayAttendanceCounts struct {
	Present int
	Absent  int
}

type RangeAttendanceCounts struct {
	Attended int
	Total    int
}

// DashboardRepository aggregates counts in single queries rather than
// loading full record sets.
type DashboardRepository interface {
	GetEmployeeCounts(ctx context.Context) (EmployeeCounts, error)

	// GetDayAttendanceCounts counts the day's records. Present includes
	// Present, Late, and Half Day; Absent counts only Absent.
	GetDayAttendanceCounts(ctx context.Context, day time.Time) (DayAttendanceCounts, error)

	// GetRangeAttendanceCounts counts attended (Present, Half Day) and
	// total records since the given date. Late is in the total only,
	// matching the per-employee attendance percentage.
	GetRangeAttendanceCounts(ctx context.Context, since time.Time) (RangeAttendanceCounts, error)

	GetDepartmentsCount(ctx context.Context) (int, error)
}
