package employee

import "context"

// EmployeeRepository defines the read-only access this core needs.
type EmployeeRepository interface {
	// GetIDs returns the set of valid employee ids, used as the reference
	// set during DTR import validation.
	GetIDs(ctx context.Context) (map[int64]struct{}, error)

	// GetByID returns one employee, the hourly-rate source for payslips.
	GetByID(ctx context.Context, empID int64) (Employee, error)

	// List returns all employees ordered by id.
	List(ctx context.Context) ([]Employee, error)
}
