package notification

import "time"

type Type string

const (
	TypeLeaveRequest    Type = "leave_request"
	TypeAttendanceAlert Type = "attendance_alert"
	TypeGeneral         Type = "general"
)

type Notification struct {
	ID         string
	EmployeeID string
	Title      string
	Message    string
	Type       Type
	IsRead     bool
	CreatedAt  time.Time
}
