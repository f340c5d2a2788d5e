package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erazemk/zavetisce/internal/model"
)

// ReportsHandler handles field reports and their triage.
type ReportsHandler struct {
	handler
}

type reportTaskRequest struct {
	Description string  `json:"description"`
	AssigneeID  *string `json:"assignee_id"`
}

// List handles GET /api/reports.
func (h *ReportsHandler) List(w http.ResponseWriter, r *http.Request) {
	reports, err := h.svc.ListReports(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, nonNil(reports))
}

// Create handles POST /api/reports. The caller is recorded as reporter.
func (h *ReportsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Report
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	reporter := GetClaims(r.Context()).UserID
	req.ReporterID = &reporter

	report, err := h.svc.FileReport(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusCreated, report)
}

// Get handles GET /api/reports/{id}.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.GetReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, report)
}

// SetStatus handles PUT /api/reports/{id}/status.
func (h *ReportsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetReportStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		writeError(w, h.log, err)
		return
	}
	h.Get(w, r)
}

// CreateTask handles POST /api/reports/{id}/tasks.
func (h *ReportsHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req reportTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.svc.CreateTaskFromReport(r.Context(), chi.URLParam(r, "id"), req.Description, req.AssigneeID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusCreated, task)
}
