package leave

import (
	"fmt"
	"strings"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

// CreateRequestInput carries the creation payload into PrepareRequest after
// boundary parsing. Dates may arrive with any time-of-day or zone; they are
// normalized to UTC midnight before the day count is derived.
type CreateRequestInput struct {
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
}

// PrepareRequest validates input and builds a leave request ready for
// persistence. The returned request is always Pending and DaysRequested is
// always derived from the date range; any caller-supplied count is ignored.
func PrepareRequest(in CreateRequestInput) (leave.LeaveRequest, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(in.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(in.LeaveTypeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type_id",
			Message: "leave_type_id is required",
		})
	}
	if in.StartDate.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}
	if in.EndDate.IsZero() {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}
	if len(errs) > 0 {
		return leave.LeaveRequest{}, errs
	}

	start := atMidnightUTC(in.StartDate)
	end := atMidnightUTC(in.EndDate)
	if end.Before(start) {
		return leave.LeaveRequest{}, leave.ErrInvalidRange
	}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return leave.LeaveRequest{}, leave.ErrInvalidReason
	}

	return leave.LeaveRequest{
		EmployeeID:    in.EmployeeID,
		LeaveTypeID:   in.LeaveTypeID,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: InclusiveDays(start, end),
		Reason:        reason,
		Status:        leave.StatusPending,
	}, nil
}

// InclusiveDays returns the calendar day count of [start, end], so a
// same-day range counts as 1. Both dates must already be at UTC midnight.
func InclusiveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// Transition applies a status change to a leave request and returns the
// updated copy. Only Pending requests may move: Approved and Rejected record
// the reviewer, Cancelled does not. Every other change, including a second
// decision on an already-terminal request, fails with ErrInvalidTransition.
// The input is never mutated, so callers can compare to detect a write.
func Transition(req leave.LeaveRequest, to leave.RequestStatus, actor string, when time.Time) (leave.LeaveRequest, error) {
	if req.Status != leave.StatusPending {
		return leave.LeaveRequest{}, fmt.Errorf("%w: request is already %s", leave.ErrInvalidTransition, req.Status)
	}

	updated := req
	switch to {
	case leave.StatusApproved, leave.StatusRejected:
		approvedDate := when
		updated.Status = to
		updated.ApprovedBy = &actor
		updated.ApprovedDate = &approvedDate
		return updated, nil
	case leave.StatusCancelled:
		updated.Status = leave.StatusCancelled
		return updated, nil
	default:
		return leave.LeaveRequest{}, fmt.Errorf("%w: cannot transition to %s", leave.ErrInvalidTransition, to)
	}
}

// withComments overlays reviewer comments on a decided request. A nil value
// leaves the stored comments untouched, so a decision made without comments
// does not clear what is already there.
func withComments(req leave.LeaveRequest, comments *string) leave.LeaveRequest {
	if comments != nil {
		req.Comments = comments
	}
	return req
}

func atMidnightUTC(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
