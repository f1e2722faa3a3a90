package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hrmslite/hrms-backend-go/internal/domain/payroll"
	"github.com/hrmslite/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5/pgconn"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Create implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)
	query := `
		INSERT INTO payroll (
			id, employee_id, pay_period_start, pay_period_end,
			basic_salary, overtime_hours, overtime_rate, bonuses,
			deductions, tax_deduction, net_salary, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW()
		) RETURNING created_at
	`

	record.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.PayPeriodStart, record.PayPeriodEnd,
		record.BasicSalary, record.OvertimeHours, record.OvertimeRate,
		record.Bonuses, record.Deductions, record.TaxDeduction,
		record.NetSalary, record.Status,
	).Scan(&record.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return payroll.Payroll{}, payroll.ErrPeriodExists
		}
		return payroll.Payroll{}, err
	}

	return record, nil
}

// List implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, p.db)

	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argIdx := 1

	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("p.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("p.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `
		SELECT p.id, p.employee_id, p.pay_period_start, p.pay_period_end,
			   p.basic_salary, p.overtime_hours, p.overtime_rate, p.bonuses,
			   p.deductions, p.tax_deduction, p.net_salary, p.status,
			   p.created_at, e.full_name
		FROM payroll p
		LEFT JOIN employees e ON e.employee_id = p.employee_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.pay_period_start DESC, p.employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var record payroll.Payroll
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.PayPeriodStart,
			&record.PayPeriodEnd, &record.BasicSalary, &record.OvertimeHours,
			&record.OvertimeRate, &record.Bonuses, &record.Deductions,
			&record.TaxDeduction, &record.NetSalary, &record.Status,
			&record.CreatedAt, &record.EmployeeName,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
