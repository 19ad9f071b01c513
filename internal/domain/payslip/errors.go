package payslip

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipAlreadyExists = errors.New("payslip already exists for this period")
	ErrEmployeeHasNoRate    = errors.New("employee has no hourly rate configured")
	ErrNoTimeRecords        = errors.New("no time records found for this period")
)
