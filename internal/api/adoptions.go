package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erazemk/zavetisce/internal/model"
)

// AdoptionsHandler handles adoption requests and decisions.
type AdoptionsHandler struct {
	handler
}

type adoptionRequest struct {
	AnimalID string `json:"animal_id"`
	// RequesterID lets an admin file on someone's behalf.
	RequesterID string `json:"requester_id,omitempty"`
}

type decisionRequest struct {
	Approve *bool `json:"approve"`
}

// List handles GET /api/adoptions.
func (h *AdoptionsHandler) List(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.svc.ListAdoptionRequests(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, nonNil(reqs))
}

// Create handles POST /api/adoptions. The caller is the requester.
func (h *AdoptionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req adoptionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AnimalID == "" {
		jsonError(w, http.StatusBadRequest, "animal_id required")
		return
	}

	claims := GetClaims(r.Context())
	requester := claims.UserID
	if req.RequesterID != "" && req.RequesterID != requester {
		if claims.Role != model.RoleAdmin {
			jsonError(w, http.StatusForbidden, "insufficient permissions")
			return
		}
		requester = req.RequesterID
	}

	created, err := h.svc.RequestAdoption(r.Context(), requester, req.AnimalID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusCreated, created)
}

// Get handles GET /api/adoptions/{id}.
func (h *AdoptionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := h.svc.GetAdoptionRequest(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, req)
}

// Decide handles POST /api/adoptions/{id}/decision.
func (h *AdoptionsHandler) Decide(w http.ResponseWriter, r *http.Request) {
	var req decisionRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Approve == nil {
		jsonError(w, http.StatusBadRequest, "approve required")
		return
	}

	res, err := h.svc.DecideAdoption(r.Context(), chi.URLParam(r, "id"), *req.Approve)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, res)
}
