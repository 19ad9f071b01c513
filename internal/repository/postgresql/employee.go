package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/employee"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetIDs(ctx context.Context) (map[int64]struct{}, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT emp_id FROM employees`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids[id] = struct{}{}
	}

	return ids, rows.Err()
}

func (r *employeeRepository) GetByID(ctx context.Context, empID int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT emp_id, first_name, last_name, position, department, hourly_rate,
			   hire_date, created_at, updated_at
		FROM employees
		WHERE emp_id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, empID).Scan(
		&e.EmpID, &e.FirstName, &e.LastName, &e.Position, &e.Department, &e.HourlyRate,
		&e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT emp_id, first_name, last_name, position, department, hourly_rate,
			   hire_date, created_at, updated_at
		FROM employees
		ORDER BY emp_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.EmpID, &e.FirstName, &e.LastName, &e.Position, &e.Department, &e.HourlyRate,
			&e.HireDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}
