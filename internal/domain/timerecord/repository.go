package timerecord

import (
	"context"
	"time"
)

// TimeRecordRepository defines data access for daily time records.
type TimeRecordRepository interface {
	// Exists reports whether a record with the given natural key is
	// already persisted.
	Exists(ctx context.Context, key NaturalKey) (bool, error)

	// InsertBatch persists a batch of records in one call. The batch is
	// all-or-nothing: a failure leaves none of its records persisted.
	InsertBatch(ctx context.Context, records []TimeRecord) error

	// ListByEmployeePeriod returns all records for an employee whose entry
	// date falls within [from, to] inclusive.
	ListByEmployeePeriod(ctx context.Context, employeeID int64, from, to time.Time) ([]TimeRecord, error)

	// List returns records matching the filter, newest entry date first.
	List(ctx context.Context, filter ListFilter) ([]TimeRecord, error)
}
