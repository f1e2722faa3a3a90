package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/employee"
	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/domain/notification"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
	"github.com/hrmslite/hrms-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveTypeRepository
	leave.LeaveRequestRepository
	employee.EmployeeRepository
	notification.NotificationRepository
}

func NewLeaveService(
	db *database.DB,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveRequestRepository leave.LeaveRequestRepository,
	employeeRepository employee.EmployeeRepository,
	notificationRepository notification.NotificationRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                     db,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveRequestRepository: leaveRequestRepository,
		EmployeeRepository:     employeeRepository,
		NotificationRepository: notificationRepository,
	}
}

// CreateLeaveType implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}

	leaveType := leave.LeaveType{
		Name:        req.Name,
		DaysAllowed: req.DaysAllowed,
		Description: req.Description,
		IsPaid:      isPaid,
	}

	created, err := s.LeaveTypeRepository.Create(ctx, leaveType)
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}

	return created, nil
}

// ListLeaveTypes implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveTypes(ctx context.Context) ([]leave.LeaveType, error) {
	types, err := s.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	return types, nil
}

// CreateLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequest, error) {
	emp, err := s.EmployeeRepository.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get employee: %w", err)
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave type: %w", err)
	}

	startDate, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		return leave.LeaveRequest{}, validator.ValidationErrors{{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		}}
	}
	endDate, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		return leave.LeaveRequest{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		}}
	}

	request, err := PrepareRequest(CreateRequestInput{
		EmployeeID:  emp.EmployeeID,
		LeaveTypeID: leaveType.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	created, err := s.LeaveRequestRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequest, error) {
	request, err := s.LeaveRequestRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	requests, err := s.LeaveRequestRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// ApproveLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) ApproveLeaveRequest(ctx context.Context, requestID string, actor string) (leave.LeaveRequest, error) {
	return s.decide(ctx, requestID, leave.StatusApproved, actor, nil)
}

// RejectLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) RejectLeaveRequest(ctx context.Context, req leave.RejectRequestRequest, actor string) (leave.LeaveRequest, error) {
	return s.decide(ctx, req.RequestID, leave.StatusRejected, actor, req.Comments)
}

// CancelLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) CancelLeaveRequest(ctx context.Context, requestID string) (leave.LeaveRequest, error) {
	var updated leave.LeaveRequest

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}

		updated, err = Transition(request, leave.StatusCancelled, "", time.Now().UTC())
		if err != nil {
			return err
		}

		if err := s.LeaveRequestRepository.UpdateStatus(txCtx, updated); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	return updated, nil
}

func (s *LeaveServiceImpl) decide(ctx context.Context, requestID string, to leave.RequestStatus, actor string, comments *string) (leave.LeaveRequest, error) {
	var updated leave.LeaveRequest

	// Read and update in one transaction so concurrent decisions cannot
	// both pass the Pending check.
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.LeaveRequestRepository.GetByID(txCtx, requestID)
		if err != nil {
			return fmt.Errorf("failed to get leave request: %w", err)
		}

		updated, err = Transition(request, to, actor, time.Now().UTC())
		if err != nil {
			return err
		}
		updated = withComments(updated, comments)

		if err := s.LeaveRequestRepository.UpdateStatus(txCtx, updated); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	s.notifyDecision(ctx, updated)

	return updated, nil
}

// notifyDecision records a notification for the employee. Failures are not
// surfaced: the decision itself already committed.
func (s *LeaveServiceImpl) notifyDecision(ctx context.Context, request leave.LeaveRequest) {
	title := "Leave request " + string(request.Status)
	message := fmt.Sprintf("Your leave request from %s to %s was %s.",
		request.StartDate.Format("2006-01-02"),
		request.EndDate.Format("2006-01-02"),
		request.Status,
	)

	_, _ = s.NotificationRepository.Create(ctx, notification.Notification{
		EmployeeID: request.EmployeeID,
		Title:      title,
		Message:    message,
		Type:       notification.TypeLeaveRequest,
	})
}
