package timerecord

import "context"

// ProgressFunc receives percentage checkpoints while an import runs: 10 when
// duplicate lookups begin, 30 once duplicate resolution completes, linear up
// to 90 across batches, 100 at completion.
type ProgressFunc func(percent int)

// ImportService defines business logic for DTR ingestion
type ImportService interface {
	// ImportCSV runs the full import pipeline over one uploaded file
	ImportCSV(ctx context.Context, content string, onProgress ProgressFunc) (ImportSummary, error)

	// ListRecords retrieves imported time records with filters
	ListRecords(ctx context.Context, filter ListFilter) ([]TimeRecordResponse, error)
}
