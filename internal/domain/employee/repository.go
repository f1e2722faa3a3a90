package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
// Employees are addressed by their business key (employee_id), matching
// the public API surface.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// List retrieves employees matching the filter, ordered by employee_id.
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)

	Update(ctx context.Context, emp Employee) (Employee, error)

	Delete(ctx context.Context, employeeID string) error
}
