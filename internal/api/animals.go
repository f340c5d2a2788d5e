package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/erazemk/zavetisce/internal/imaging"
	"github.com/erazemk/zavetisce/internal/model"
)

// AnimalsHandler handles animal intake, status and photos.
type AnimalsHandler struct {
	handler
}

type statusRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/animals.
func (h *AnimalsHandler) List(w http.ResponseWriter, r *http.Request) {
	animals, err := h.svc.ListAnimals(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, nonNil(animals))
}

// Create handles POST /api/animals.
func (h *AnimalsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Animal
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	animal, err := h.svc.RegisterAnimal(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusCreated, animal)
}

// Get handles GET /api/animals/{id}.
func (h *AnimalsHandler) Get(w http.ResponseWriter, r *http.Request) {
	animal, err := h.svc.GetAnimal(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, animal)
}

// Update handles PUT /api/animals/{id}.
func (h *AnimalsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Animal
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.ID = chi.URLParam(r, "id")

	animal, err := h.svc.UpdateAnimal(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, animal)
}

// Delete handles DELETE /api/animals/{id}.
func (h *AnimalsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAnimal(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetStatus handles PUT /api/animals/{id}/status.
func (h *AnimalsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.SetAnimalStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, h.log, err)
		return
	}
	h.Get(w, r)
}

// UploadPhoto handles PUT /api/animals/{id}/photo. The photo is the
// "photo" field of a multipart form.
func (h *AnimalsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes+1<<20)

	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "photo file required")
		return
	}
	defer file.Close()

	animal, err := h.svc.SetAnimalPhoto(r.Context(), chi.URLParam(r, "id"), file)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	jsonResponse(w, http.StatusOK, animal)
}

// GetPhoto handles GET /api/animals/{id}/photo.
func (h *AnimalsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	data, mime, err := h.svc.GetAnimalPhoto(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Cache-Control", "private, max-age=3600")
	_, _ = w.Write(data)
}
