package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/lumina-hotels/hris-backend-go/internal/domain/employee"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/payslip"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/timerecord"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/normalize"
	"github.com/shopspring/decimal"
)

// Rate table. Overtime is paid at 1.5x the hourly rate; SSS and PhilHealth
// contributions are percentages of gross + overtime pay; Pag-IBIG is a fixed
// monthly amount.
var (
	overtimeMultiplier = decimal.NewFromFloat(1.5)
	sssRate            = decimal.NewFromFloat(0.05)
	philHealthRate     = decimal.NewFromFloat(0.025)
	pagIbigAmount      = decimal.NewFromInt(200)
)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	recordRepo   timerecord.TimeRecordRepository
	payslipRepo  payslip.PayslipRepository
	logger       *slog.Logger
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	recordRepo timerecord.TimeRecordRepository,
	payslipRepo payslip.PayslipRepository,
	logger *slog.Logger,
) payslip.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
		payslipRepo:  payslipRepo,
		logger:       logger,
	}
}

// GeneratePayslips computes and persists one payslip per requested employee
// for the given period. Employees are processed strictly sequentially; every
// per-employee failure is downgraded to a summary line and never aborts the
// run.
func (s *PayrollServiceImpl) GeneratePayslips(ctx context.Context, req payslip.GeneratePayslipsRequest) (payslip.GenerationResult, error) {
	if err := req.Validate(); err != nil {
		return payslip.GenerationResult{}, err
	}

	periodStart, err := normalize.MonthDate(req.PeriodMonth, req.PeriodYear)
	if err != nil {
		return payslip.GenerationResult{}, err
	}
	periodEnd := periodStart.AddDate(0, 1, -1)
	monthName := normalize.MonthName(periodStart.Month())

	var result payslip.GenerationResult
	for _, empID := range req.EmployeeIDs {
		line := s.generateForEmployee(ctx, empID, monthName, req.PeriodYear, periodStart, periodEnd, &result)
		result.Summary = append(result.Summary, line)
	}

	s.logger.Info("payslip generation finished",
		"period", fmt.Sprintf("%s %d", monthName, req.PeriodYear),
		"generated", result.GeneratedCount,
		"skipped", result.SkippedCount,
		"errors", result.ErrorCount)

	return result, nil
}

func (s *PayrollServiceImpl) generateForEmployee(
	ctx context.Context,
	empID int64,
	monthName string,
	year int,
	periodStart, periodEnd time.Time,
	result *payslip.GenerationResult,
) string {
	emp, err := s.employeeRepo.GetByID(ctx, empID)
	if err != nil {
		result.ErrorCount++
		return fmt.Sprintf("Employee %d: error - %v", empID, err)
	}
	if emp.HourlyRate == nil {
		result.ErrorCount++
		return fmt.Sprintf("Employee %d: error - %v", empID, payslip.ErrEmployeeHasNoRate)
	}

	// One payslip per employee per period; regeneration requires deleting
	// the existing report first.
	_, err = s.payslipRepo.FindByEmployeePeriod(ctx, empID, monthName, year)
	if err == nil {
		result.SkippedCount++
		return fmt.Sprintf("Employee %d: skipped - payslip already exists for %s %d", empID, monthName, year)
	}
	if !errors.Is(err, payslip.ErrPayslipNotFound) {
		result.ErrorCount++
		return fmt.Sprintf("Employee %d: error - %v", empID, err)
	}

	records, err := s.recordRepo.ListByEmployeePeriod(ctx, empID, periodStart, periodEnd)
	if err != nil {
		result.ErrorCount++
		return fmt.Sprintf("Employee %d: error - %v", empID, err)
	}
	if len(records) == 0 {
		result.ErrorCount++
		return fmt.Sprintf("Employee %d: error - %v for %s %d", empID, payslip.ErrNoTimeRecords, monthName, year)
	}

	totalHours, totalOvertime := aggregateHours(records)
	report := Compute(empID, monthName, year, *emp.HourlyRate, totalHours, totalOvertime)

	created, err := s.payslipRepo.Insert(ctx, report)
	if err != nil {
		if errors.Is(err, payslip.ErrPayslipAlreadyExists) {
			result.SkippedCount++
			return fmt.Sprintf("Employee %d: skipped - payslip already exists for %s %d", empID, monthName, year)
		}
		result.ErrorCount++
		return fmt.Sprintf("Employee %d: error - %v", empID, err)
	}

	result.GeneratedCount++
	return fmt.Sprintf("Employee %d: payslip generated, net pay %s", empID, created.NetPay.StringFixed(2))
}

// aggregateHours sums worked and overtime durations across the period's
// records as decimal hours.
func aggregateHours(records []timerecord.TimeRecord) (totalHours, totalOvertime decimal.Decimal) {
	for _, r := range records {
		totalHours = totalHours.Add(durationToHours(r.HoursWorked))
		totalOvertime = totalOvertime.Add(durationToHours(r.OvertimeHours))
	}
	return totalHours, totalOvertime
}

// durationToHours converts a canonical HH:MM:SS duration to decimal hours as
// hours + minutes/60. The seconds component is discarded; attendance sheets
// only ever carry whole minutes.
func durationToHours(hhmmss string) decimal.Decimal {
	parts := strings.Split(hhmmss, ":")
	if len(parts) < 2 {
		return decimal.Zero
	}
	hours, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return decimal.Zero
	}
	minutes, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(hours).Add(decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60)))
}

// Compute applies the rate table to aggregated hours for one period.
func Compute(empID int64, monthName string, year int, hourlyRate, totalHours, totalOvertime decimal.Decimal) payslip.PayslipReport {
	grossSalary := totalHours.Mul(hourlyRate)
	overtimePay := totalOvertime.Mul(hourlyRate.Mul(overtimeMultiplier))

	contributionBase := grossSalary.Add(overtimePay)
	sss := contributionBase.Mul(sssRate)
	philHealth := contributionBase.Mul(philHealthRate)
	totalDeductions := sss.Add(philHealth).Add(pagIbigAmount)

	return payslip.PayslipReport{
		EmployeeID:         empID,
		PeriodMonth:        monthName,
		PeriodYear:         year,
		TotalHours:         totalHours,
		TotalOvertimeHours: totalOvertime,
		GrossSalary:        grossSalary,
		OvertimePay:        overtimePay,
		SSS:                sss,
		PhilHealth:         philHealth,
		PagIbig:            pagIbigAmount,
		TotalDeductions:    totalDeductions,
		NetPay:             grossSalary.Add(overtimePay).Sub(totalDeductions),
		Status:             payslip.PayslipStatusPending,
		DateGenerated:      time.Now(),
	}
}

// ========== READS ==========

func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, filter payslip.ListFilter) ([]payslip.PayslipResponse, error) {
	reports, err := s.payslipRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]payslip.PayslipResponse, 0, len(reports))
	for _, r := range reports {
		result = append(result, payslip.ToResponse(r))
	}
	return result, nil
}

func (s *PayrollServiceImpl) DeletePayslip(ctx context.Context, id string) error {
	return s.payslipRepo.Delete(ctx, id)
}
