package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID               string
	EmployeeID       string
	FullName         string
	Email            string
	Phone            *string
	Department       string
	Position         *string
	HireDate         *time.Time
	Salary           *decimal.Decimal
	ManagerID        *string
	Status           Status
	Address          *string
	EmergencyContact *string
	EmergencyPhone   *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type Status string

const (
	StatusActive     Status = "Active"
	StatusInactive   Status = "Inactive"
	StatusTerminated Status = "Terminated"
)

// Directory is an in-memory lookup of employees keyed by employee ID.
// Aggregation code resolves names and departments through it instead of
// reaching back to the store.
type Directory map[string]Employee

func NewDirectory(employees []Employee) Directory {
	dir := make(Directory, len(employees))
	for _, emp := range employees {
		dir[emp.EmployeeID] = emp
	}
	return dir
}
