package payslip

import "context"

// PayrollService defines business logic for payslip operations
type PayrollService interface {
	// GeneratePayslips generates payslips for one period, one employee at a
	// time, and reports per-employee outcomes
	GeneratePayslips(ctx context.Context, req GeneratePayslipsRequest) (GenerationResult, error)

	// ListPayslips retrieves payslips with filters
	ListPayslips(ctx context.Context, filter ListFilter) ([]PayslipResponse, error)

	// DeletePayslip removes a payslip so its period can be regenerated
	DeletePayslip(ctx context.Context, id string) error
}
