package payroll

import (
	"context"
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type PayrollService interface {
	Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.Payroll, error)
	List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error)
}

type PayrollServiceImpl struct {
	payroll.PayrollRepository
	employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepository payroll.PayrollRepository,
	employeeRepository employee.EmployeeRepository,
) PayrollService {
	return &PayrollServiceImpl{
		PayrollRepository:  payrollRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Create implements PayrollService.
func (s *PayrollServiceImpl) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.Payroll, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to get employee: %w", err)
	}

	start, _ := validator.IsValidDate(req.PayPeriodStart)
	end, _ := validator.IsValidDate(req.PayPeriodEnd)

	record := payroll.Payroll{
		EmployeeID:     emp.EmployeeID,
		PayPeriodStart: start,
		PayPeriodEnd:   end,
		BasicSalary:    payroll.Amount(req.BasicSalary),
		OvertimeHours:  payroll.Amount(req.OvertimeHours),
		OvertimeRate:   payroll.Amount(req.OvertimeRate),
		Bonuses:        payroll.Amount(req.Bonuses),
		Deductions:     payroll.Amount(req.Deductions),
		TaxDeduction:   payroll.Amount(req.TaxDeduction),
		Status:         payroll.StatusDraft,
	}
	record.NetSalary = payroll.ComputeNet(
		record.BasicSalary,
		record.OvertimeHours,
		record.OvertimeRate,
		record.Bonuses,
		record.Deductions,
		record.TaxDeduction,
	)

	created, err := s.PayrollRepository.Create(ctx, record)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return created, nil
}

// List implements PayrollService.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	records, err := s.PayrollRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}
	return records, nil
}
