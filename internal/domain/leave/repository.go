package leave

import (
	"context"
)

type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)

	GetByID(ctx context.Context, id string) (LeaveType, error)

	// List retrieves all leave types ordered by name.
	List(ctx context.Context) ([]LeaveType, error)
}

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves requests matching the filter, newest first.
	List(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// UpdateStatus persists the outcome of a lifecycle transition.
	UpdateStatus(ctx context.Context, request LeaveRequest) error

	// CountByStatus counts requests currently in the given status.
	CountByStatus(ctx context.Context, status RequestStatus) (int, error)
}
