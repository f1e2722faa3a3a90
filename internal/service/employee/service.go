package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeService interface {
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error)
	List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error)
	Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	Delete(ctx context.Context, employeeID string) error

	// BulkImport creates many employees, collecting per-row failures
	// instead of aborting on the first bad row.
	BulkImport(ctx context.Context, reqs []employee.CreateEmployeeRequest) employee.BulkImportResult
}

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepository,
	}
}

// Create implements EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	emp, err := fromCreateRequest(req)
	if err != nil {
		return employee.Employee{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByEmployeeID implements EmployeeService.
func (s *EmployeeServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

// List implements EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	employees, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Update implements EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = req.Phone
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Position != nil {
		emp.Position = req.Position
	}
	if req.HireDate != nil {
		hireDate, ok := validator.IsValidDate(*req.HireDate)
		if !ok {
			return employee.Employee{}, validator.ValidationErrors{{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			}}
		}
		emp.HireDate = &hireDate
	}
	if req.Salary != nil {
		salary, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return employee.Employee{}, validator.ValidationErrors{{
				Field:   "salary",
				Message: "salary must be a decimal number",
			}}
		}
		emp.Salary = &salary
	}
	if req.ManagerID != nil {
		emp.ManagerID = req.ManagerID
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
	if req.Address != nil {
		emp.Address = req.Address
	}
	if req.EmergencyContact != nil {
		emp.EmergencyContact = req.EmergencyContact
	}
	if req.EmergencyPhone != nil {
		emp.EmergencyPhone = req.EmergencyPhone
	}

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

// Delete implements EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	if err := s.EmployeeRepository.Delete(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

// BulkImport implements EmployeeService.
func (s *EmployeeServiceImpl) BulkImport(ctx context.Context, reqs []employee.CreateEmployeeRequest) employee.BulkImportResult {
	result := employee.BulkImportResult{
		TotalCount: len(reqs),
		Errors:     []employee.BulkImportError{},
	}

	for _, req := range reqs {
		if err := req.Validate(); err != nil {
			result.Errors = append(result.Errors, importError(req.EmployeeID, err))
			continue
		}
		if _, err := s.Create(ctx, req); err != nil {
			result.Errors = append(result.Errors, importError(req.EmployeeID, err))
			continue
		}
		result.CreatedCount++
	}

	return result
}

func importError(employeeID string, err error) employee.BulkImportError {
	if employeeID == "" {
		employeeID = "Unknown"
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		return employee.BulkImportError{EmployeeID: employeeID, Errors: errs.ToMap()}
	}

	return employee.BulkImportError{
		EmployeeID: employeeID,
		Errors:     map[string]string{"error": err.Error()},
	}
}

func fromCreateRequest(req employee.CreateEmployeeRequest) (employee.Employee, error) {
	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	emp := employee.Employee{
		EmployeeID:       req.EmployeeID,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		Department:       req.Department,
		Position:         req.Position,
		ManagerID:        req.ManagerID,
		Status:           status,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		EmergencyPhone:   req.EmergencyPhone,
	}

	if req.HireDate != nil {
		hireDate, ok := validator.IsValidDate(*req.HireDate)
		if !ok {
			return employee.Employee{}, validator.ValidationErrors{{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			}}
		}
		emp.HireDate = &hireDate
	}

	if req.Salary != nil {
		salary, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return employee.Employee{}, validator.ValidationErrors{{
				Field:   "salary",
				Message: "salary must be a decimal number",
			}}
		}
		emp.Salary = &salary
	}

	return emp, nil
}
