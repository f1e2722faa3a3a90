package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusDraft     Status = "Draft"
	StatusProcessed Status = "Processed"
	StatusPaid      Status = "Paid"
)

type Payroll struct {
	ID             string
	EmployeeID     string
	PayPeriodStart time.Time
	PayPeriodEnd   time.Time
	BasicSalary    decimal.Decimal
	OvertimeHours  decimal.Decimal
	OvertimeRate   decimal.Decimal
	Bonuses        decimal.Decimal
	Deductions     decimal.Decimal
	TaxDeduction   decimal.Decimal
	NetSalary      decimal.Decimal
	Status         Status
	CreatedAt      time.Time

	// Joined for responses
	EmployeeName *string
}

// ComputeNet derives the net salary: basic + overtime pay + bonuses, less
// deductions and tax. The stored net_salary is always server-computed.
func ComputeNet(basic, overtimeHours, overtimeRate, bonuses, deductions, tax decimal.Decimal) decimal.Decimal {
	gross := basic.Add(overtimeHours.Mul(overtimeRate)).Add(bonuses)
	return gross.Sub(deductions).Sub(tax)
}
