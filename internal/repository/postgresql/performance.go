package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hrmslite/hrms-backend-go/internal/domain/performance"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.PerformanceRepository {
	return &performanceRepositoryImpl{db: db}
}

// Create implements performance.PerformanceRepository.
func (p *performanceRepositoryImpl) Create(ctx context.Context, review performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, p.db)
	query := `
		INSERT INTO performance_reviews (
			id, employee_id, review_period_start, review_period_end,
			overall_rating, goals_achievement, communication, teamwork,
			technical_skills, comments, reviewer_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW()
		) RETURNING created_at
	`

	review.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		review.ID, review.EmployeeID, review.ReviewPeriodStart, review.ReviewPeriodEnd,
		review.OverallRating, review.GoalsAchievement, review.Communication,
		review.Teamwork, review.TechnicalSkills, review.Comments, review.ReviewerID,
	).Scan(&review.CreatedAt)

	if err != nil {
		return performance.Review{}, err
	}

	return review, nil
}

// List implements performance.PerformanceRepository.
func (p *performanceRepositoryImpl) List(ctx context.Context, filter performance.ReviewFilter) ([]performance.Review, error) {
	q := GetQuerier(ctx, p.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("pr.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	query := `
		SELECT pr.id, pr.employee_id, pr.review_period_start, pr.review_period_end,
			   pr.overall_rating, pr.goals_achievement, pr.communication,
			   pr.teamwork, pr.technical_skills, pr.comments, pr.reviewer_id,
			   pr.created_at, e.full_name
		FROM performance_reviews pr
		LEFT JOIN employees e ON e.employee_id = pr.employee_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY pr.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		var review performance.Review
		if err := rows.Scan(
			&review.ID, &review.EmployeeID, &review.ReviewPeriodStart,
			&review.ReviewPeriodEnd, &review.OverallRating, &review.GoalsAchievement,
			&review.Communication, &review.Teamwork, &review.TechnicalSkills,
			&review.Comments, &review.ReviewerID, &review.CreatedAt,
			&review.EmployeeName,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reviews, nil
}
