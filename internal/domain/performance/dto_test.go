package performance

import (
	"errors"
	"testing"

	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateReviewRequest() CreateReviewRequest {
	return CreateReviewRequest{
		EmployeeID:        "EMP001",
		ReviewPeriodStart: "2024-01-01",
		ReviewPeriodEnd:   "2024-06-30",
		OverallRating:     4,
		GoalsAchievement:  4,
		Communication:     3,
		Teamwork:          5,
		TechnicalSkills:   4,
		ReviewerID:        "MGR001",
	}
}

func TestCreateReviewRequest_Validate(t *testing.T) {
	req := validCreateReviewRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateReviewRequest_Validate_RatingBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateReviewRequest)
		field  string
	}{
		{"zero overall", func(r *CreateReviewRequest) { r.OverallRating = 0 }, "overall_rating"},
		{"rating above five", func(r *CreateReviewRequest) { r.Teamwork = 6 }, "teamwork"},
		{"negative rating", func(r *CreateReviewRequest) { r.Communication = -1 }, "communication"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateReviewRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestCreateReviewRequest_Validate_PeriodOrder(t *testing.T) {
	req := validCreateReviewRequest()
	req.ReviewPeriodStart = "2024-06-30"
	req.ReviewPeriodEnd = "2024-01-01"

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "review_period_end")
}

func TestCreateReviewRequest_Validate_MissingIdentifiers(t *testing.T) {
	req := validCreateReviewRequest()
	req.EmployeeID = ""
	req.ReviewerID = ""

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "employee_id")
	assert.Contains(t, errs.ToMap(), "reviewer_id")
}
