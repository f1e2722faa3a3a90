package payroll

import "context"

type PayrollRepository interface {
	Create(ctx context.Context, p Payroll) (Payroll, error)

	// List retrieves payroll records matching the filter, newest first.
	List(ctx context.Context, filter PayrollFilter) ([]Payroll, error)
}
