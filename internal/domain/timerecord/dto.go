package timerecord

// SampleLimit bounds the per-import samples carried in the summary.
const SampleLimit = 10

// ImportError is a row-level failure. Row numbers are 1-indexed with the
// header counting as row 1, so the first data row is row 2.
type ImportError struct {
	Row     int               `json:"row"`
	Message string            `json:"message"`
	RawRow  map[string]string `json:"raw_row,omitempty"`
}

// DuplicateRecord identifies a row skipped because its natural key already
// exists in the store.
type DuplicateRecord struct {
	Row        int    `json:"row"`
	EmployeeID int64  `json:"employee_id"`
	EntryDate  string `json:"entry_date"`
}

// ImportSummary is the result of one CSV import. Imported, Failed and
// Duplicates are disjoint counters partitioning Total; Errors and
// DuplicateRecords are bounded samples (first SampleLimit each).
type ImportSummary struct {
	Total            int               `json:"total"`
	Imported         int               `json:"imported"`
	Failed           int               `json:"failed"`
	Duplicates       int               `json:"duplicates"`
	Errors           []ImportError     `json:"errors,omitempty"`
	DuplicateRecords []DuplicateRecord `json:"duplicate_records,omitempty"`
}

// ListFilter narrows time-record listings for the DTR screen.
type ListFilter struct {
	EmployeeID *int64
	Month      *int
	Year       *int
}

type TimeRecordResponse struct {
	ID            string `json:"id"`
	EmployeeID    int64  `json:"employee_id"`
	EntryDate     string `json:"entry_date"`
	TimeIn        string `json:"time_in"`
	TimeOut       string `json:"time_out"`
	PeriodMonth   string `json:"period_month"`
	HoursWorked   string `json:"hours_worked"`
	OvertimeHours string `json:"overtime_hours"`
	Absent        bool   `json:"absent"`
}

func ToResponse(r TimeRecord) TimeRecordResponse {
	return TimeRecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		EntryDate:     r.EntryDate.Format("2006-01-02"),
		TimeIn:        r.TimeIn,
		TimeOut:       r.TimeOut,
		PeriodMonth:   r.PeriodMonth.Format("2006-01-02"),
		HoursWorked:   r.HoursWorked,
		OvertimeHours: r.OvertimeHours,
		Absent:        r.Absent,
	}
}
