package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeIDExists   = errors.New("employee ID already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidEmployeeID  = errors.New("employee ID can only contain letters, numbers, hyphens, and underscores")
	ErrInvalidStatus      = errors.New("status must be Active, Inactive, or Terminated")
	ErrEmployeeHasRecords = errors.New("employee still has attendance or leave records")
)
