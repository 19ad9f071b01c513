package timerecord

import (
	"time"
)

// TimeRecord is one daily-time-record row. Time-of-day and duration fields
// are canonical HH:MM:SS strings produced by the normalizer; records are
// never mutated after creation.
type TimeRecord struct {
	ID            string
	EmployeeID    int64
	EntryDate     time.Time
	TimeIn        string
	TimeOut       string
	PeriodMonth   time.Time
	HoursWorked   string
	OvertimeHours string
	Absent        bool
	CreatedAt     time.Time
}

// NaturalKey identifies a TimeRecord for duplicate detection. No two
// persisted records may share it.
type NaturalKey struct {
	EmployeeID int64
	EntryDate  time.Time
	TimeIn     string
	TimeOut    string
}

func (r TimeRecord) Key() NaturalKey {
	return NaturalKey{
		EmployeeID: r.EmployeeID,
		EntryDate:  r.EntryDate,
		TimeIn:     r.TimeIn,
		TimeOut:    r.TimeOut,
	}
}
