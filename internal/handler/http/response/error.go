package response

import (
	"errors"
	"net/http"

	"github.com/lumina-hotels/hris-backend-go/internal/domain/employee"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/payslip"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/timerecord"
	"github.com/lumina-hotels/hris-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoEmployeesRegistered):
		BadRequest(w, "No employees registered", nil)

	// Time record domain errors
	case errors.Is(err, timerecord.ErrEmptyFile):
		BadRequest(w, "File contains no data rows", nil)
	case errors.Is(err, timerecord.ErrNoValidRecords):
		BadRequest(w, "No valid records to import", nil)
	case errors.Is(err, timerecord.ErrDuplicateRecord):
		Conflict(w, "Time record already exists")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrPayslipAlreadyExists):
		Conflict(w, "Payslip already exists for this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
