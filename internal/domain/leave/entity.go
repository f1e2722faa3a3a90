package leave

import (
	"time"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "Pending"
	StatusApproved  RequestStatus = "Approved"
	StatusRejected  RequestStatus = "Rejected"
	StatusCancelled RequestStatus = "Cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s RequestStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

func ValidStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusApproved),
		string(StatusRejected),
		string(StatusCancelled),
	}
}

type LeaveType struct {
	ID          string
	Name        string
	DaysAllowed int
	Description *string
	IsPaid      bool
	CreatedAt   time.Time
}

// LeaveRequest is an employee's petition for time off. DaysRequested is
// always derived from the date range at creation time, never taken from the
// caller.
type LeaveRequest struct {
	ID            string
	EmployeeID    string
	LeaveTypeID   string
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	Reason        string
	Status        RequestStatus
	ApprovedBy    *string
	ApprovedDate  *time.Time
	Comments      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for responses
	LeaveTypeName *string
	EmployeeName  *string
}
