package performance

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/performance"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type PerformanceService interface {
	Create(ctx context.Context, req performance.CreateReviewRequest) (performance.Review, error)
	List(ctx context.Context, filter performance.ReviewFilter) ([]performance.Review, error)
}

type PerformanceServiceImpl struct {
	performance.PerformanceRepository
	employee.EmployeeRepository
}

func NewPerformanceService(
	performanceRepository performance.PerformanceRepository,
	employeeRepository employee.EmployeeRepository,
) PerformanceService {
	return &PerformanceServiceImpl{
		PerformanceRepository: performanceRepository,
		EmployeeRepository:    employeeRepository,
	}
}

// Create implements PerformanceService.
func (s *PerformanceServiceImpl) Create(ctx context.Context, req performance.CreateReviewRequest) (performance.Review, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, _ := validator.IsValidDate(req.ReviewPeriodStart)
	end, _ := validator.IsValidDate(req.ReviewPeriodEnd)

	review := performance.Review{
		EmployeeID:        emp.EmployeeID,
		ReviewPeriodStart: start,
		ReviewPeriodEnd:   end,
		OverallRating:     req.OverallRating,
		GoalsAchievement:  req.GoalsAchievement,
		Communication:     req.Communication,
		Teamwork:          req.Teamwork,
		TechnicalSkills:   req.TechnicalSkills,
		Comments:          req.Comments,
		ReviewerID:        req.ReviewerID,
	}
	review.AverageRating = performance.ComputeAverage(
		review.OverallRating,
		review.GoalsAchievement,
		review.Communication,
		review.Teamwork,
		review.TechnicalSkills,
	)

	created, err := s.PerformanceRepository.Create(ctx, review)
	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}
	created.EmployeeName = &emp.FullName

	return created, nil
}

// List implements PerformanceService.
func (s *PerformanceServiceImpl) List(ctx context.Context, filter performance.ReviewFilter) ([]performance.Review, error) {
	reviews, err := s.PerformanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list performance reviews: %w", err)
	}

	for i := range reviews {
		reviews[i].AverageRating = performance.ComputeAverage(
			reviews[i].OverallRating,
			reviews[i].GoalsAchievement,
			reviews[i].Communication,
			reviews[i].Teamwork,
			reviews[i].TechnicalSkills,
		)
	}

	return reviews, nil
}
