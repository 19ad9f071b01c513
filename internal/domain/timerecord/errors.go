package timerecord

import "errors"

var (
	ErrEmptyFile       = errors.New("file contains no data rows")
	ErrNoValidRecords  = errors.New("no valid records to import")
	ErrDuplicateRecord = errors.New("time record already exists")
)
