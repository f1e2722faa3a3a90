package leave

import (
	"context"
)

// LeaveService defines business logic for leave types and requests.
type LeaveService interface {
	CreateLeaveType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]LeaveType, error)

	// CreateLeaveRequest validates the payload, derives the requested day
	// count, and stores the request in Pending status.
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, error)

	// ApproveLeaveRequest and RejectLeaveRequest move a Pending request into
	// a terminal state, attributing the decision to actor.
	ApproveLeaveRequest(ctx context.Context, requestID string, actor string) (LeaveRequest, error)
	RejectLeaveRequest(ctx context.Context, req RejectRequestRequest, actor string) (LeaveRequest, error)

	// CancelLeaveRequest withdraws a Pending request without reviewer
	// attribution.
	CancelLeaveRequest(ctx context.Context, requestID string) (LeaveRequest, error)
}
