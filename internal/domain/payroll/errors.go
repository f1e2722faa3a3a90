package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll record not found")
	ErrPeriodExists    = errors.New("payroll already exists for this employee and period")
)
