package dashboard

import "context"

// StatsResponse is the console landing-page summary.
type StatsResponse struct {
	TotalEmployees        int     `json:"total_employees"`
	ActiveEmployees       int     `json:"active_employees"`
	PresentToday          int     `json:"present_today"`
	AbsentToday           int     `json:"absent_today"`
	PendingLeaveRequests  int     `json:"pending_leave_requests"`
	DepartmentsCount      int     `json:"departments_count"`
	AverageAttendanceRate float64 `json:"average_attendance_rate"`
}

type DashboardService interface {
	GetStats(ctx context.Context) (StatsResponse, error)
}
