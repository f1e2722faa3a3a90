package postgresql

import (
	"context"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// GetEmployeeCounts implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) GetEmployeeCounts(ctx context.Context) (dashboard.EmployeeCounts, error) {
	q := GetQuerier(ctx, d.db)
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'Active')
		FROM employees
	`

	var counts dashboard.EmployeeCounts
	if err := q.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		return dashboard.EmployeeCounts{}, err
	}
	return counts, nil
}

// GetDayAttendanceCounts implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) GetDayAttendanceCounts(ctx context.Context, day time.Time) (dashboard.DayAttendanceCounts, error) {
	q := GetQuerier(ctx, d.db)
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('Present', 'Late', 'Half Day')),
			COUNT(*) FILTER (WHERE status = 'Absent')
		FROM attendance
		WHERE date = $1
	`

	var counts dashboard.DayAttendanceCounts
	if err := q.QueryRow(ctx, query, day).Scan(&counts.Present, &counts.Absent); err != nil {
		return dashboard.DayAttendanceCounts{}, err
	}
	return counts, nil
}

// GetRangeAttendanceCounts implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) GetRangeAttendanceCounts(ctx context.Context, since time.Time) (dashboard.RangeAttendanceCounts, error) {
	q := GetQuerier(ctx, d.db)
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('Present', 'Half Day')),
			COUNT(*)
		FROM attendance
		WHERE date >= $1
	`

	var counts dashboard.RangeAttendanceCounts
	if err := q.QueryRow(ctx, query, since).Scan(&counts.Attended, &counts.Total); err != nil {
		return dashboard.RangeAttendanceCounts{}, err
	}
	return counts, nil
}

// GetDepartmentsCount implements dashboard.DashboardRepository.
func (d *dashboardRepositoryImpl) GetDepartmentsCount(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, d.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
