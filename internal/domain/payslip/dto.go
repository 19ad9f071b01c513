package payslip

import (
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/normalize"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipsRequest struct {
	PeriodMonth string  `json:"period_month"`
	PeriodYear  int     `json:"period_year"`
	EmployeeIDs []int64 `json:"employee_ids"`
}

func (r *GeneratePayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PeriodMonth) {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "is required"})
	} else if _, err := normalize.MonthDate(r.PeriodMonth, 2000); err != nil {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be a full English month name"})
	}
	if r.PeriodYear < 2000 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be 2000 or later"})
	}
	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// GenerationResult aggregates one generation run. Summary holds one
// human-readable line per processed employee.
type GenerationResult struct {
	GeneratedCount int      `json:"generated_count"`
	SkippedCount   int      `json:"skipped_count"`
	ErrorCount     int      `json:"error_count"`
	Summary        []string `json:"summary"`
}

// ListFilter narrows payslip listings.
type ListFilter struct {
	EmployeeID  *int64
	PeriodMonth *string
	PeriodYear  *int
}

type PayslipResponse struct {
	ID                 string `json:"id"`
	EmployeeID         int64  `json:"employee_id"`
	PeriodMonth        string `json:"period_month"`
	PeriodYear         int    `json:"period_year"`
	TotalHours         string `json:"total_hours"`
	TotalOvertimeHours string `json:"total_overtime_hours"`
	GrossSalary        string `json:"gross_salary"`
	OvertimePay        string `json:"overtime_pay"`
	SSS                string `json:"sss"`
	PhilHealth         string `json:"phil_health"`
	PagIbig            string `json:"pag_ibig"`
	TotalDeductions    string `json:"total_deductions"`
	NetPay             string `json:"net_pay"`
	Status             string `json:"status"`
	DateGenerated      string `json:"date_generated"`
}

func ToResponse(p PayslipReport) PayslipResponse {
	return PayslipResponse{
		ID:                 p.ID,
		EmployeeID:         p.EmployeeID,
		PeriodMonth:        p.PeriodMonth,
		PeriodYear:         p.PeriodYear,
		TotalHours:         fixed(p.TotalHours),
		TotalOvertimeHours: fixed(p.TotalOvertimeHours),
		GrossSalary:        fixed(p.GrossSalary),
		OvertimePay:        fixed(p.OvertimePay),
		SSS:                fixed(p.SSS),
		PhilHealth:         fixed(p.PhilHealth),
		PagIbig:            fixed(p.PagIbig),
		TotalDeductions:    fixed(p.TotalDeductions),
		NetPay:             fixed(p.NetPay),
		Status:             string(p.Status),
		DateGenerated:      p.DateGenerated.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func fixed(d decimal.Decimal) string {
	return d.StringFixed(2)
}
