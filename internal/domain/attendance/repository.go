package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert creates a record, or updates the existing one for the same
	// employee and date. One record per employee per date is an invariant.
	Upsert(ctx context.Context, record Record) (Record, error)

	// List retrieves records matching the filter, newest date first.
	List(ctx context.Context, filter AttendanceFilter) ([]Record, error)

	// ListByEmployee retrieves every record for one employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]Record, error)
}
