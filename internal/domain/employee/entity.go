package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is read-only reference data for the DTR and payroll pipeline:
// the valid-id set for import validation and the rate source for payslips.
type Employee struct {
	EmpID      int64
	FirstName  string
	LastName   string
	Position   *string
	Department *string
	HourlyRate *decimal.Decimal
	HireDate   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
