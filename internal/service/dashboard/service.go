package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	leave.LeaveRequestRepository
}

func NewDashboardService(
	dashboardRepository dashboard.DashboardRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository:    dashboardRepository,
		LeaveRequestRepository: leaveRequestRepository,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	employees, err := s.DashboardRepository.GetEmployeeCounts(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	todayCounts, err := s.DashboardRepository.GetDayAttendanceCounts(ctx, today)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	rangeCounts, err := s.DashboardRepository.GetRangeAttendanceCounts(ctx, today.AddDate(0, 0, -30))
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count recent attendance: %w", err)
	}

	departments, err := s.DashboardRepository.GetDepartmentsCount(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count departments: %w", err)
	}

	pending, err := s.LeaveRequestRepository.CountByStatus(ctx, leave.StatusPending)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	rate := 0.0
	if rangeCounts.Total > 0 {
		rate = float64(rangeCounts.Attended) / float64(rangeCounts.Total) * 100
		rate = math.Round(rate*100) / 100
	}

	return dashboard.StatsResponse{
		TotalEmployees:        employees.Total,
		ActiveEmployees:       employees.Active,
		PresentToday:          todayCounts.Present,
		AbsentToday:           todayCounts.Absent,
		PendingLeaveRequests:  pending,
		DepartmentsCount:      departments,
		AverageAttendanceRate: rate,
	}, nil
}
