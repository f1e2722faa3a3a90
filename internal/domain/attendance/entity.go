package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLate    Status = "Late"
	StatusHalfDay Status = "Half Day"
)

func ValidStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusLate),
		string(StatusHalfDay),
	}
}

// Record is one day's presence status for one employee. At most one record
// exists per employee per date.
type Record struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Status      Status
	CheckIn     *time.Time
	CheckOut    *time.Time
	HoursWorked *float64
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for responses
	EmployeeName *string
}
