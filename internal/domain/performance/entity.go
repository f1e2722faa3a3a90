package performance

import (
	"math"
	"time"
)

// Rating dimensions run from 1 (Poor) to 5 (Excellent).
const (
	RatingMin = 1
	RatingMax = 5
)

type Review struct {
	ID                string
	EmployeeID        string
	ReviewPeriodStart time.Time
	ReviewPeriodEnd   time.Time
	OverallRating     int
	GoalsAchievement  int
	Communication     int
	Teamwork          int
	TechnicalSkills   int
	AverageRating     float64
	Comments          *string
	ReviewerID        string
	CreatedAt         time.Time

	// Joined for responses
	EmployeeName *string
}

// ComputeAverage derives the mean of the five rating dimensions, rounded to
// two decimal places. The stored dimensions are the source of truth; the
// average is always server-computed.
func ComputeAverage(overall, goals, communication, teamwork, technical int) float64 {
	sum := float64(overall + goals + communication + teamwork + technical)
	return math.Round(sum/5*100) / 100
}
