package department

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/department"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type DepartmentService interface {
	Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error)
	GetByID(ctx context.Context, id string) (department.Department, error)
	List(ctx context.Context) ([]department.Department, error)
	Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.Department, error)
	Delete(ctx context.Context, id string) error
}

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepository department.DepartmentRepository) DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepository,
	}
}

// Create implements DepartmentService.
func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	dept := department.Department{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	}

	if req.Budget != nil {
		budget, err := decimal.NewFromString(*req.Budget)
		if err != nil {
			return department.Department{}, validator.ValidationErrors{{
				Field:   "budget",
				Message: "budget must be a decimal number",
			}}
		}
		dept.Budget = &budget
	}

	created, err := s.DepartmentRepository.Create(ctx, dept)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

// GetByID implements DepartmentService.
func (s *DepartmentServiceImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}
	return dept, nil
}

// List implements DepartmentService.
func (s *DepartmentServiceImpl) List(ctx context.Context) ([]department.Department, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

// Update implements DepartmentService.
func (s *DepartmentServiceImpl) Update(ctx context.Context, req department.UpdateDepartmentRequest) (department.Department, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, req.ID)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = req.Description
	}
	if req.ManagerID != nil {
		dept.ManagerID = req.ManagerID
	}
	if req.Budget != nil {
		budget, err := decimal.NewFromString(*req.Budget)
		if err != nil {
			return department.Department{}, validator.ValidationErrors{{
				Field:   "budget",
				Message: "budget must be a decimal number",
			}}
		}
		dept.Budget = &budget
	}

	updated, err := s.DepartmentRepository.Update(ctx, dept)
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return updated, nil
}

// Delete implements DepartmentService.
func (s *DepartmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.DepartmentRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}
