package leave

import (
	"testing"
	"time"

	"github.com/hrmslite/hrms-backend-go/internal/domain/leave"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validInput() CreateRequestInput {
	return CreateRequestInput{
		EmployeeID:  "EMP001",
		LeaveTypeID: "lt-1",
		StartDate:   date(2024, 5, 10),
		EndDate:     date(2024, 5, 14),
		Reason:      "Family vacation",
	}
}

func TestPrepareRequest_DaysRequested(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2024, 5, 10), date(2024, 5, 10), 1},
		{"two days", date(2024, 5, 10), date(2024, 5, 11), 2},
		{"inclusive week", date(2024, 5, 10), date(2024, 5, 16), 7},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 4},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"across year boundary", date(2023, 12, 30), date(2024, 1, 2), 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			in := validInput()
			in.StartDate = c.start
			in.EndDate = c.end

			req, err := PrepareRequest(in)
			require.NoError(t, err)
			assert.Equal(t, c.want, req.DaysRequested)
		})
	}
}

func TestPrepareRequest_NormalizesToUTCMidnight(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)

	in := validInput()
	in.StartDate = time.Date(2024, 5, 10, 23, 30, 0, 0, time.UTC)
	in.EndDate = time.Date(2024, 5, 12, 8, 15, 0, 0, jakarta)

	req, err := PrepareRequest(in)
	require.NoError(t, err)

	assert.Equal(t, date(2024, 5, 10), req.StartDate)
	// 08:15+07:00 on the 12th is 01:15 UTC on the 12th
	assert.Equal(t, date(2024, 5, 12), req.EndDate)
	assert.Equal(t, 3, req.DaysRequested)
}

func TestPrepareRequest_InvalidRange(t *testing.T) {
	in := validInput()
	in.StartDate = date(2024, 5, 10)
	in.EndDate = date(2024, 5, 9)

	_, err := PrepareRequest(in)
	assert.ErrorIs(t, err, leave.ErrInvalidRange)
}

func TestPrepareRequest_InvalidReason(t *testing.T) {
	for _, reason := range []string{"", "   ", "\t\n"} {
		in := validInput()
		in.Reason = reason

		_, err := PrepareRequest(in)
		assert.ErrorIs(t, err, leave.ErrInvalidReason)
	}
}

func TestPrepareRequest_TrimsReason(t *testing.T) {
	in := validInput()
	in.Reason = "  medical appointment  "

	req, err := PrepareRequest(in)
	require.NoError(t, err)
	assert.Equal(t, "medical appointment", req.Reason)
}

func TestPrepareRequest_MissingFields(t *testing.T) {
	_, err := PrepareRequest(CreateRequestInput{})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "employee_id")
	assert.Contains(t, fields, "leave_type_id")
	assert.Contains(t, fields, "start_date")
	assert.Contains(t, fields, "end_date")
}

func TestPrepareRequest_ForcesPendingStatus(t *testing.T) {
	req, err := PrepareRequest(validInput())
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, req.Status)
	assert.Nil(t, req.ApprovedBy)
	assert.Nil(t, req.ApprovedDate)
}

func TestTransition_Approve(t *testing.T) {
	req, err := PrepareRequest(validInput())
	require.NoError(t, err)

	when := time.Date(2024, 5, 15, 9, 0, 0, 0, time.UTC)
	approved, err := Transition(req, leave.StatusApproved, "admin@example.com", when)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "admin@example.com", *approved.ApprovedBy)
	require.NotNil(t, approved.ApprovedDate)
	assert.Equal(t, when, *approved.ApprovedDate)

	// Input must not be mutated
	assert.Equal(t, leave.StatusPending, req.Status)
	assert.Nil(t, req.ApprovedBy)
}

func TestTransition_Reject(t *testing.T) {
	req, err := PrepareRequest(validInput())
	require.NoError(t, err)

	when := time.Now().UTC()
	rejected, err := Transition(req, leave.StatusRejected, "hr@example.com", when)
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, rejected.Status)
	require.NotNil(t, rejected.ApprovedBy)
	assert.Equal(t, "hr@example.com", *rejected.ApprovedBy)
	assert.NotNil(t, rejected.ApprovedDate)
}

func TestTransition_Cancel(t *testing.T) {
	req, err := PrepareRequest(validInput())
	require.NoError(t, err)

	cancelled, err := Transition(req, leave.StatusCancelled, "emp@example.com", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, leave.StatusCancelled, cancelled.Status)
	assert.Nil(t, cancelled.ApprovedBy)
	assert.Nil(t, cancelled.ApprovedDate)
}

func TestTransition_TerminalStatesAreFinal(t *testing.T) {
	req, err := PrepareRequest(validInput())
	require.NoError(t, err)

	for _, terminal := range []leave.RequestStatus{
		leave.StatusApproved,
		leave.StatusRejected,
		leave.StatusCancelled,
	} {
		settled, err := Transition(req, terminal, "admin@example.com", time.Now().UTC())
		require.NoError(t, err)

		for _, next := range []leave.RequestStatus{
			leave.StatusPending,
			leave.StatusApproved,
			leave.StatusRejected,
			leave.StatusCancelled,
		} {
			_, err := Transition(settled, next, "admin@example.com", time.Now().UTC())
			assert.ErrorIs(t, err, leave.ErrInvalidTransition,
				"transition %s -> %s should fail", terminal, next)
		}
	}
}

func TestTransition_DoubleApprovalFails(t *testing.T) {
	req, err := PrepareRequest(validInput())
	require.NoError(t, err)

	approved, err := Transition(req, leave.StatusApproved, "first@example.com", time.Now().UTC())
	require.NoError(t, err)

	_, err = Transition(approved, leave.StatusApproved, "second@example.com", time.Now().UTC())
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)
}

func TestTransition_IntoPendingFails(t *testing.T) {
	req, err := PrepareRequest(validInput())
	require.NoError(t, err)

	_, err = Transition(req, leave.StatusPending, "admin@example.com", time.Now().UTC())
	assert.ErrorIs(t, err, leave.ErrInvalidTransition)
}

func TestRequestStatus_Terminal(t *testing.T) {
	assert.False(t, leave.StatusPending.Terminal())
	assert.True(t, leave.StatusApproved.Terminal())
	assert.True(t, leave.StatusRejected.Terminal())
	assert.True(t, leave.StatusCancelled.Terminal())
}

func TestWithComments_NilKeepsExisting(t *testing.T) {
	existing := "Approved verbally last week"
	req := leave.LeaveRequest{
		Status:   leave.StatusApproved,
		Comments: &existing,
	}

	got := withComments(req, nil)
	require.NotNil(t, got.Comments)
	assert.Equal(t, existing, *got.Comments)
}

func TestWithComments_OverwritesWhenProvided(t *testing.T) {
	existing := "stale"
	comments := "Coverage arranged with the team"
	req := leave.LeaveRequest{Comments: &existing}

	got := withComments(req, &comments)
	require.NotNil(t, got.Comments)
	assert.Equal(t, comments, *got.Comments)
}
