package performance

import (
	"fmt"

	"github.com/hrmslite/hrms-backend-go/internal/pkg/validator"
)

type CreateReviewRequest struct {
	EmployeeID        string  `json:"employee_id"`
	ReviewPeriodStart string  `json:"review_period_start"`
	ReviewPeriodEnd   string  `json:"review_period_end"`
	OverallRating     int     `json:"overall_rating"`
	GoalsAchievement  int     `json:"goals_achievement"`
	Communication     int     `json:"communication"`
	Teamwork          int     `json:"teamwork"`
	TechnicalSkills   int     `json:"technical_skills"`
	Comments          *string `json:"comments,omitempty"`
	ReviewerID        string  `json:"reviewer_id"`
}

func (r *CreateReviewRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if validator.IsEmpty(r.ReviewerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "reviewer_id",
			Message: "reviewer_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.ReviewPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_start",
			Message: "review_period_start must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.ReviewPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_end",
			Message: "review_period_end must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "review_period_end",
			Message: "review_period_end must not be before review_period_start",
		})
	}

	for _, rating := range []struct {
		name  string
		value int
	}{
		{"overall_rating", r.OverallRating},
		{"goals_achievement", r.GoalsAchievement},
		{"communication", r.Communication},
		{"teamwork", r.Teamwork},
		{"technical_skills", r.TechnicalSkills},
	} {
		if rating.value < RatingMin || rating.value > RatingMax {
			errs = append(errs, validator.ValidationError{
				Field:   rating.name,
				Message: fmt.Sprintf("%s must be between %d and %d", rating.name, RatingMin, RatingMax),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ReviewFilter struct {
	EmployeeID *string
}
