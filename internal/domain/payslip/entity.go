package payslip

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusPending  PayslipStatus = "pending"
	PayslipStatusReleased PayslipStatus = "released"
)

// PayslipReport is the computed payroll result for one employee and one
// calendar-month period. At most one report exists per
// (employee, period month, period year); regeneration requires deleting the
// existing report first.
type PayslipReport struct {
	ID                 string
	EmployeeID         int64
	PeriodMonth        string
	PeriodYear         int
	TotalHours         decimal.Decimal
	TotalOvertimeHours decimal.Decimal
	GrossSalary        decimal.Decimal
	OvertimePay        decimal.Decimal
	SSS                decimal.Decimal
	PhilHealth         decimal.Decimal
	PagIbig            decimal.Decimal
	TotalDeductions    decimal.Decimal
	NetPay             decimal.Decimal
	Status             PayslipStatus
	DateGenerated      time.Time
}
