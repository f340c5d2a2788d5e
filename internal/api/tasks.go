package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erazemk/zavetisce/internal/model"
)

// TasksHandler handles volunteer tasks.
type TasksHandler struct {
	handler
}

type assignRequest struct {
	AssigneeID *string `json:"assignee_id"`
}

// List handles GET /api/tasks. With ?assignee= only that user's tasks
// are returned.
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		tasks []model.Task
		err   error
	)
	if assignee := r.URL.Query().Get("assignee"); assignee != "" {
		tasks, err = h.svc.ListTasksForAssignee(r.Context(), assignee)
	} else {
		tasks, err = h.svc.ListTasks(r.Context())
	}
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, nonNil(tasks))
}

// Create handles POST /api/tasks.
func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Task
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.svc.CreateTask(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusCreated, task)
}

// Assign handles PUT /api/tasks/{id}/assignee. A null assignee unassigns.
func (h *TasksHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.svc.AssignTask(r.Context(), chi.URLParam(r, "id"), req.AssigneeID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, task)
}

// SetStatus handles PUT /api/tasks/{id}/status.
func (h *TasksHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.svc.SetTaskStatus(r.Context(), chi.URLParam(r, "id"), req.Status); err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "status updated"})
}
