package http

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/lumina-hotels/hris-backend-go/internal/domain/timerecord"
	"github.com/lumina-hotels/hris-backend-go/internal/handler/http/response"
)

type DTRHandler interface {
	ImportCSV(w http.ResponseWriter, r *http.Request)
	ListRecords(w http.ResponseWriter, r *http.Request)
}

type dtrHandlerImpl struct {
	importService timerecord.ImportService
}

func NewDTRHandler(importService timerecord.ImportService) DTRHandler {
	return &dtrHandlerImpl{importService: importService}
}

// ImportCSV implements DTRHandler.
func (h *dtrHandlerImpl) ImportCSV(w http.ResponseWriter, r *http.Request) {
	// Parse multipart form (max 10MB)
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Field 'file' is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		slog.Error("Failed to read uploaded file", "error", err)
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}

	runID := uuid.NewString()
	onProgress := func(percent int) {
		slog.Debug("import progress", "run_id", runID, "file", header.Filename, "percent", percent)
	}

	summary, err := h.importService.ImportCSV(r.Context(), string(content), onProgress)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", summary)
}

// ListRecords implements DTRHandler.
func (h *dtrHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	var filter timerecord.ListFilter

	if v := r.URL.Query().Get("employee_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		filter.EmployeeID = &id
	}
	if v := r.URL.Query().Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil || month < 1 || month > 12 {
			response.BadRequest(w, "Invalid month", nil)
			return
		}
		filter.Month = &month
	}
	if v := r.URL.Query().Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "Invalid year", nil)
			return
		}
		filter.Year = &year
	}

	records, err := h.importService.ListRecords(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
