package dtr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lumina-hotels/hris-backend-go/internal/domain/employee"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/timerecord"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/csvutil"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/normalize"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

type ImportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	recordRepo   timerecord.TimeRecordRepository
	batchSize    int
	logger       *slog.Logger
}

func NewImportService(
	employeeRepo employee.EmployeeRepository,
	recordRepo timerecord.TimeRecordRepository,
	batchSize int,
	logger *slog.Logger,
) timerecord.ImportService {
	return &ImportServiceImpl{
		employeeRepo: employeeRepo,
		recordRepo:   recordRepo,
		batchSize:    batchSize,
		logger:       logger,
	}
}

type candidate struct {
	row    int
	record timerecord.TimeRecord
}

// ImportCSV runs the full DTR pipeline over one uploaded file: parse,
// validate, reconcile duplicates, batch-insert. Row-level failures never
// abort the batch; only a total absence of valid input returns an error.
func (s *ImportServiceImpl) ImportCSV(ctx context.Context, content string, onProgress timerecord.ProgressFunc) (timerecord.ImportSummary, error) {
	if onProgress == nil {
		onProgress = func(int) {}
	}

	parsed := csvutil.Parse(content)
	if len(parsed.Malformed) > 0 {
		s.logger.Warn("dropped rows with mismatched field count",
			"rows", parsed.Malformed, "expected_fields", len(parsed.Header))
	}
	if len(parsed.Rows) == 0 {
		return timerecord.ImportSummary{}, timerecord.ErrEmptyFile
	}

	validIDs, err := s.employeeRepo.GetIDs(ctx)
	if err != nil {
		return timerecord.ImportSummary{}, fmt.Errorf("failed to load employee ids: %w", err)
	}
	if len(validIDs) == 0 {
		return timerecord.ImportSummary{}, employee.ErrNoEmployeesRegistered
	}

	candidates, importErrors := transformRows(parsed.Rows, validIDs)

	summary := timerecord.ImportSummary{
		Total:  len(parsed.Rows),
		Failed: len(importErrors),
		Errors: sampleErrors(importErrors),
	}

	onProgress(10)
	unique, duplicates := s.reconcileDuplicates(ctx, candidates)
	onProgress(30)

	summary.Duplicates = len(duplicates)
	summary.DuplicateRecords = sampleDuplicates(duplicates)

	if len(unique) == 0 {
		onProgress(100)
		if len(duplicates) == 0 {
			// Every row failed validation.
			return summary, timerecord.ErrNoValidRecords
		}
		// All candidates already persisted; nothing to insert.
		return summary, nil
	}

	summary.Imported, summary.Failed = s.insertBatches(ctx, unique, summary.Failed, onProgress)
	onProgress(100)

	return summary, nil
}

func transformRows(rows []csvutil.Row, validIDs map[int64]struct{}) ([]candidate, []timerecord.ImportError) {
	var candidates []candidate
	var importErrors []timerecord.ImportError

	for _, row := range rows {
		record, err := transformRow(row, validIDs)
		if err != nil {
			importErrors = append(importErrors, timerecord.ImportError{
				Row:     row.Line,
				Message: err.Error(),
				RawRow:  row.Fields,
			})
			continue
		}
		candidates = append(candidates, candidate{row: row.Line, record: record})
	}

	return candidates, importErrors
}

func transformRow(row csvutil.Row, validIDs map[int64]struct{}) (timerecord.TimeRecord, error) {
	var record timerecord.TimeRecord

	rawID := row.Fields["employee_id"]
	if rawID == "" {
		return record, fmt.Errorf("employee_id is required")
	}
	if !validator.IsNumeric(rawID) {
		return record, fmt.Errorf("invalid employee_id %q", rawID)
	}
	employeeID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return record, fmt.Errorf("invalid employee_id %q", rawID)
	}
	if _, ok := validIDs[employeeID]; !ok {
		return record, fmt.Errorf("unknown employee_id %d", employeeID)
	}
	record.EmployeeID = employeeID

	rawDate := row.Fields["entry_date"]
	if rawDate == "" {
		return record, fmt.Errorf("entry_date is required")
	}
	entryDate, err := normalize.EntryDate(rawDate)
	if err != nil {
		return record, err
	}
	record.EntryDate = entryDate
	record.PeriodMonth = entryDate.AddDate(0, 0, -entryDate.Day()+1)

	// An explicit month column overrides the period derived from the entry
	// date; the year still comes from the entry date.
	if month := row.Fields["month"]; month != "" {
		period, err := normalize.MonthDate(month, entryDate.Year())
		if err != nil {
			return record, err
		}
		record.PeriodMonth = period
	}

	timeIn := row.Fields["time_in"]
	if timeIn == "" {
		timeIn = "00:00"
	}
	record.TimeIn, err = normalize.Time(timeIn)
	if err != nil {
		return record, err
	}

	timeOut := row.Fields["time_out"]
	if timeOut == "" {
		timeOut = "00:00"
	}
	record.TimeOut, err = normalize.Time(timeOut)
	if err != nil {
		return record, err
	}

	hoursWorked := row.Fields["hours_worked"]
	if hoursWorked == "" {
		hoursWorked = row.Fields["hrs_worked"]
	}
	if hoursWorked == "" {
		hoursWorked = "0"
	}
	record.HoursWorked, err = normalize.Duration(hoursWorked)
	if err != nil {
		return record, err
	}

	overtime := row.Fields["overtime_hrs"]
	if overtime == "" {
		overtime = "0"
	}
	record.OvertimeHours, err = normalize.Duration(overtime)
	if err != nil {
		return record, err
	}

	record.Absent = normalize.Bool(row.Fields["absent"])

	return record, nil
}

// reconcileDuplicates partitions the candidates by checking each natural key
// against the store. The existence checks are independent reads and run
// concurrently. A lookup failure counts the candidate as unique; the insert
// will surface a persistent store error.
func (s *ImportServiceImpl) reconcileDuplicates(ctx context.Context, candidates []candidate) ([]candidate, []timerecord.DuplicateRecord) {
	exists := make([]bool, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range candidates {
		i, c := i, c
		g.Go(func() error {
			found, err := s.recordRepo.Exists(gctx, c.record.Key())
			if err != nil {
				s.logger.Warn("duplicate check failed, assuming new record",
					"row", c.row, "employee_id", c.record.EmployeeID, "error", err)
				return nil
			}
			exists[i] = found
			return nil
		})
	}
	_ = g.Wait()

	var unique []candidate
	var duplicates []timerecord.DuplicateRecord
	for i, c := range candidates {
		if exists[i] {
			duplicates = append(duplicates, timerecord.DuplicateRecord{
				Row:        c.row,
				EmployeeID: c.record.EmployeeID,
				EntryDate:  c.record.EntryDate.Format("2006-01-02"),
			})
			continue
		}
		unique = append(unique, c)
	}

	return unique, duplicates
}

// insertBatches persists the unique records in fixed-size batches,
// sequentially. A failed batch counts all of its records as failed; there is
// no per-record retry or partial-batch success.
func (s *ImportServiceImpl) insertBatches(ctx context.Context, unique []candidate, failed int, onProgress timerecord.ProgressFunc) (imported, totalFailed int) {
	totalFailed = failed
	processed := 0

	for start := 0; start < len(unique); start += s.batchSize {
		end := min(start+s.batchSize, len(unique))
		batch := make([]timerecord.TimeRecord, 0, end-start)
		for _, c := range unique[start:end] {
			batch = append(batch, c.record)
		}

		if err := s.recordRepo.InsertBatch(ctx, batch); err != nil {
			s.logger.Error("batch insert failed", "batch_size", len(batch), "error", err)
			totalFailed += len(batch)
		} else {
			imported += len(batch)
		}

		processed += len(batch)
		onProgress(30 + processed*60/len(unique))
	}

	return imported, totalFailed
}

// ListRecords backs the daily-time-records screen.
func (s *ImportServiceImpl) ListRecords(ctx context.Context, filter timerecord.ListFilter) ([]timerecord.TimeRecordResponse, error) {
	records, err := s.recordRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]timerecord.TimeRecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, timerecord.ToResponse(r))
	}
	return result, nil
}

func sampleErrors(errs []timerecord.ImportError) []timerecord.ImportError {
	if len(errs) > timerecord.SampleLimit {
		return errs[:timerecord.SampleLimit]
	}
	return errs
}

func sampleDuplicates(dups []timerecord.DuplicateRecord) []timerecord.DuplicateRecord {
	if len(dups) > timerecord.SampleLimit {
		return dups[:timerecord.SampleLimit]
	}
	return dups
}
