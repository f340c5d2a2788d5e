package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NotificationsHandler serves the caller's notifications and lets staff
// message a user directly.
type NotificationsHandler struct {
	handler
}

type notificationRequest struct {
	RecipientID string `json:"recipient_id"`
	Message     string `json:"message"`
}

// Create handles POST /api/notifications.
func (h *NotificationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req notificationRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RecipientID == "" {
		jsonError(w, http.StatusBadRequest, "recipient_id required")
		return
	}

	note, err := h.svc.EnqueueNotification(r.Context(), req.RecipientID, req.Message)
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	h.log.Info("notification sent",
		zap.String("recipient", note.RecipientID),
		zap.String("by", GetClaims(r.Context()).UserID),
	)
	jsonResponse(w, http.StatusCreated, note)
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotifications(r.Context(), GetClaims(r.Context()).UserID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, nonNil(notes))
}

// MarkRead handles PUT /api/notifications/{id}/read.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := GetClaims(r.Context()).UserID
	if err := h.svc.MarkNotificationRead(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "marked read"})
}
