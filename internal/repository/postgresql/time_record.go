package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/timerecord"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/database"
)

type timeRecordRepository struct {
	db *database.DB
}

func NewTimeRecordRepository(db *database.DB) timerecord.TimeRecordRepository {
	return &timeRecordRepository{db: db}
}

func (r *timeRecordRepository) Exists(ctx context.Context, key timerecord.NaturalKey) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM time_records
			WHERE employee_id = $1 AND entry_date = $2 AND time_in = $3 AND time_out = $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, key.EmployeeID, key.EntryDate, key.TimeIn, key.TimeOut).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check time record existence: %w", err)
	}

	return exists, nil
}

func (r *timeRecordRepository) InsertBatch(ctx context.Context, records []timerecord.TimeRecord) error {
	if len(records) == 0 {
		return nil
	}

	// One multi-row insert per batch, inside a transaction, keeps the batch
	// all-or-nothing.
	var sb strings.Builder
	sb.WriteString(`
		INSERT INTO time_records (
			employee_id, entry_date, time_in, time_out, period_month,
			hours_worked, overtime_hours, absent
		) VALUES `)

	args := make([]interface{}, 0, len(records)*8)
	for i, rec := range records {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 8
		sb.WriteString(fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8))
		args = append(args,
			rec.EmployeeID, rec.EntryDate, rec.TimeIn, rec.TimeOut, rec.PeriodMonth,
			rec.HoursWorked, rec.OvertimeHours, rec.Absent,
		)
	}

	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, sb.String(), args...); err != nil {
			if strings.Contains(err.Error(), "uk_time_record_natural_key") {
				return timerecord.ErrDuplicateRecord
			}
			return fmt.Errorf("failed to insert time record batch: %w", err)
		}
		return nil
	})
}

func (r *timeRecordRepository) ListByEmployeePeriod(ctx context.Context, employeeID int64, from, to time.Time) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry_date, time_in, time_out, period_month,
			   hours_worked, overtime_hours, absent, created_at
		FROM time_records
		WHERE employee_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	return scanTimeRecords(rows)
}

func (r *timeRecordRepository) List(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry_date, time_in, time_out, period_month,
			   hours_worked, overtime_hours, absent, created_at
		FROM time_records
		WHERE 1=1
	`
	var args []interface{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		query += fmt.Sprintf(" AND employee_id = $%d", len(args))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM entry_date) = $%d", len(args))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM entry_date) = $%d", len(args))
	}

	query += " ORDER BY entry_date DESC, employee_id"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time records: %w", err)
	}
	defer rows.Close()

	return scanTimeRecords(rows)
}

func scanTimeRecords(rows pgx.Rows) ([]timerecord.TimeRecord, error) {
	var records []timerecord.TimeRecord
	for rows.Next() {
		var rec timerecord.TimeRecord
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.EntryDate, &rec.TimeIn, &rec.TimeOut, &rec.PeriodMonth,
			&rec.HoursWorked, &rec.OvertimeHours, &rec.Absent, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan time record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
