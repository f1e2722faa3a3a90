package employee

import (
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	EmployeeID       string  `json:"employee_id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            *string `json:"phone,omitempty"`
	Department       string  `json:"department"`
	Position         *string `json:"position,omitempty"`
	HireDate         *string `json:"hire_date,omitempty"`
	Salary           *string `json:"salary,omitempty"`
	ManagerID        *string `json:"manager_id,omitempty"`
	Status           string  `json:"status,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id can only contain letters, numbers, hyphens, and underscores",
		})
	}

	if len([]rune(r.FullName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must be at least 2 characters long",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active, Inactive, or Terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	EmployeeID       string  `json:"-"`
	FullName         *string `json:"full_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	Department       *string `json:"department,omitempty"`
	Position         *string `json:"position,omitempty"`
	HireDate         *string `json:"hire_date,omitempty"`
	Salary           *string `json:"salary,omitempty"`
	ManagerID        *string `json:"manager_id,omitempty"`
	Status           *string `json:"status,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.FullName != nil && len([]rune(*r.FullName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must be at least 2 characters long",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusActive), string(StatusInactive), string(StatusTerminated),
	}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be Active, Inactive, or Terminated",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeFilter struct {
	Search     *string
	Department *string
	Status     *string
}

type BulkImportResult struct {
	CreatedCount int               `json:"created_count"`
	TotalCount   int               `json:"total_count"`
	Errors       []BulkImportError `json:"errors"`
}

type BulkImportError struct {
	EmployeeID string            `json:"employee_id"`
	Errors     map[string]string `json:"errors"`
}
