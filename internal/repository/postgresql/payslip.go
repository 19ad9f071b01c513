package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/payslip"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	id, employee_id, period_month, period_year, total_hours, total_overtime_hours,
	gross_salary, overtime_pay, sss, phil_health, pag_ibig, total_deductions,
	net_pay, status, date_generated
`

func (r *payslipRepository) FindByEmployeePeriod(ctx context.Context, employeeID int64, periodMonth string, periodYear int) (payslip.PayslipReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslip_reports
		WHERE employee_id = $1 AND period_month = $2 AND period_year = $3
	`

	var p payslip.PayslipReport
	err := q.QueryRow(ctx, query, employeeID, periodMonth, periodYear).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear, &p.TotalHours, &p.TotalOvertimeHours,
		&p.GrossSalary, &p.OvertimePay, &p.SSS, &p.PhilHealth, &p.PagIbig, &p.TotalDeductions,
		&p.NetPay, &p.Status, &p.DateGenerated,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.PayslipReport{}, payslip.ErrPayslipNotFound
		}
		return payslip.PayslipReport{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) Insert(ctx context.Context, report payslip.PayslipReport) (payslip.PayslipReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslip_reports (
			employee_id, period_month, period_year, total_hours, total_overtime_hours,
			gross_salary, overtime_pay, sss, phil_health, pag_ibig, total_deductions,
			net_pay, status, date_generated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + payslipColumns

	var p payslip.PayslipReport
	err := q.QueryRow(ctx, query,
		report.EmployeeID, report.PeriodMonth, report.PeriodYear, report.TotalHours, report.TotalOvertimeHours,
		report.GrossSalary, report.OvertimePay, report.SSS, report.PhilHealth, report.PagIbig, report.TotalDeductions,
		report.NetPay, report.Status, report.DateGenerated,
	).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear, &p.TotalHours, &p.TotalOvertimeHours,
		&p.GrossSalary, &p.OvertimePay, &p.SSS, &p.PhilHealth, &p.PagIbig, &p.TotalDeductions,
		&p.NetPay, &p.Status, &p.DateGenerated,
	)
	if err != nil {
		if strings.Contains(err.Error(), "uk_payslip_employee_period") {
			return payslip.PayslipReport{}, payslip.ErrPayslipAlreadyExists
		}
		return payslip.PayslipReport{}, fmt.Errorf("failed to insert payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) List(ctx context.Context, filter payslip.ListFilter) ([]payslip.PayslipReport, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslip_reports
		WHERE 1=1
	`
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.PeriodMonth != nil {
		args = append(args, *filter.PeriodMonth)
		query += fmt.Sprintf(" AND period_month = $%d", len(args))
	}
	if filter.PeriodYear != nil {
		args = append(args, *filter.PeriodYear)
		query += fmt.Sprintf(" AND period_year = $%d", len(args))
	}

	query += " ORDER BY date_generated DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var reports []payslip.PayslipReport
	for rows.Next() {
		var p payslip.PayslipReport
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodMonth, &p.PeriodYear, &p.TotalHours, &p.TotalOvertimeHours,
			&p.GrossSalary, &p.OvertimePay, &p.SSS, &p.PhilHealth, &p.PagIbig, &p.TotalDeductions,
			&p.NetPay, &p.Status, &p.DateGenerated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		reports = append(reports, p)
	}

	return reports, rows.Err()
}

func (r *payslipRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payslip_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payslip.ErrPayslipNotFound
	}

	return nil
}
