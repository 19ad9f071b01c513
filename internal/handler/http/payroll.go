package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/payslip"
	"github.com/lumina-hotels/hris-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GeneratePayslips(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	DeletePayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payslip.PayrollService
}

func NewPayrollHandler(payrollService payslip.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GeneratePayslips implements PayrollHandler.
func (h *payrollHandlerImpl) GeneratePayslips(w http.ResponseWriter, r *http.Request) {
	var req payslip.GeneratePayslipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayslips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip generation completed", result)
}

// ListPayslips implements PayrollHandler.
func (h *payrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	var filter payslip.ListFilter

	if v := r.URL.Query().Get("employee_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		filter.EmployeeID = &id
	}
	if v := r.URL.Query().Get("period_month"); v != "" {
		filter.PeriodMonth = &v
	}
	if v := r.URL.Query().Get("period_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid period_year", nil)
			return
		}
		filter.PeriodYear = &year
	}

	payslips, err := h.payrollService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslips)
}

// DeletePayslip implements PayrollHandler.
func (h *payrollHandlerImpl) DeletePayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip id is required", nil)
		return
	}

	if err := h.payrollService.DeletePayslip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted", nil)
}
