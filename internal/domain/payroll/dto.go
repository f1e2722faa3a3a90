package payroll

import (
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePayrollRequest struct {
	EmployeeID     string `json:"employee_id"`
	PayPeriodStart string `json:"pay_period_start"`
	PayPeriodEnd   string `json:"pay_period_end"`
	BasicSalary    string `json:"basic_salary"`
	OvertimeHours  string `json:"overtime_hours,omitempty"`
	OvertimeRate   string `json:"overtime_rate,omitempty"`
	Bonuses        string `json:"bonuses,omitempty"`
	Deductions     string `json:"deductions,omitempty"`
	TaxDeduction   string `json:"tax_deduction,omitempty"`
}

func (r *CreatePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.PayPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_start",
			Message: "pay_period_start must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.PayPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_end",
			Message: "pay_period_end must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_period_end",
			Message: "pay_period_end must not be before pay_period_start",
		})
	}

	for _, field := range []struct {
		name     string
		value    string
		required bool
	}{
		{"basic_salary", r.BasicSalary, true},
		{"overtime_hours", r.OvertimeHours, false},
		{"overtime_rate", r.OvertimeRate, false},
		{"bonuses", r.Bonuses, false},
		{"deductions", r.Deductions, false},
		{"tax_deduction", r.TaxDeduction, false},
	} {
		if field.value == "" {
			if field.required {
				errs = append(errs, validator.ValidationError{
					Field:   field.name,
					Message: field.name + " is required",
				})
			}
			continue
		}
		amount, err := decimal.NewFromString(field.value)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field.name,
				Message: field.name + " must be a decimal number",
			})
			continue
		}
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   field.name,
				Message: field.name + " must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Amount parses a decimal form field, treating an empty string as zero.
func Amount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

type PayrollFilter struct {
	EmployeeID *string
	Status     *string
}
