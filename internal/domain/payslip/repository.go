package payslip

import "context"

// PayslipRepository defines data access for payslip reports.
type PayslipRepository interface {
	// FindByEmployeePeriod returns the report for an employee and period,
	// or ErrPayslipNotFound.
	FindByEmployeePeriod(ctx context.Context, employeeID int64, periodMonth string, periodYear int) (PayslipReport, error)

	// Insert persists one report. The unique period constraint surfaces as
	// ErrPayslipAlreadyExists.
	Insert(ctx context.Context, report PayslipReport) (PayslipReport, error)

	// List returns reports matching the filter, newest first.
	List(ctx context.Context, filter ListFilter) ([]PayslipReport, error)

	// Delete removes a report by id, the only path to regenerating a
	// period.
	Delete(ctx context.Context, id string) error
}
