package httpx

import (
	"errors"
	"net/http"

	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/service"
)

// PetHandlers provides HTTP handlers for pet CRUD.
type PetHandlers struct {
	Svc *service.PetService
}

// Create handles POST /api/pets.
func (h *PetHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePetRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	pet, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, pet)
}

// List handles GET /api/pets.
func (h *PetHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	pets, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, pets)
}

// GetByID handles GET /api/pets/{id}.
func (h *PetHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	pet, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, pet)
}

// Update handles PUT /api/pets/{id}.
func (h *PetHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdatePetRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	pet, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, pet)
}

// Delete handles DELETE /api/pets/{id}.
func (h *PetHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "pet_not_found",
			Err:     errors.New("pet not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
