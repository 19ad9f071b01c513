package employee

import "context"

// EmployeeService defines read operations over employee reference data
type EmployeeService interface {
	// List returns all employees ordered by id
	List(ctx context.Context) ([]EmployeeResponse, error)

	// GetByID returns one employee
	GetByID(ctx context.Context, empID int64) (EmployeeResponse, error)
}
