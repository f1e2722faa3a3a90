package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrLeaveTypeExists      = errors.New("leave type name already exists")

	// Lifecycle errors
	ErrInvalidRange      = errors.New("end date must not be before start date")
	ErrInvalidReason     = errors.New("reason must not be empty")
	ErrInvalidTransition = errors.New("invalid leave request status transition")
)
