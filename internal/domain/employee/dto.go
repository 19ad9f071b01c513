package employee

type EmployeeResponse struct {
	EmpID      int64   `json:"emp_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Position   *string `json:"position,omitempty"`
	Department *string `json:"department,omitempty"`
	HourlyRate *string `json:"hourly_rate,omitempty"`
	HireDate   string  `json:"hire_date"`
}

func ToResponse(e Employee) EmployeeResponse {
	var rate *string
	if e.HourlyRate != nil {
		s := e.HourlyRate.StringFixed(2)
		rate = &s
	}
	return EmployeeResponse{
		EmpID:      e.EmpID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Position:   e.Position,
		Department: e.Department,
		HourlyRate: rate,
		HireDate:   e.HireDate.Format("2006-01-02"),
	}
}
