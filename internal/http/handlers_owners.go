package httpx

import (
	"errors"
	"net/http"

	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/service"
)

// OwnerHandlers provides HTTP handlers for owner CRUD.
type OwnerHandlers struct {
	Svc *service.OwnerService
}

// Create handles POST /api/owners.
func (h *OwnerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOwnerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	owner, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, owner)
}

// List handles GET /api/owners.
func (h *OwnerHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	owners, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, owners)
}

// GetByID handles GET /api/owners/{id}.
func (h *OwnerHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	owner, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, owner)
}

// Update handles PUT /api/owners/{id}.
func (h *OwnerHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateOwnerRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	owner, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, owner)
}

// Delete handles DELETE /api/owners/{id}. Deleting an owner returns their
// pets to the adoptable pool via the FK's ON DELETE SET NULL.
func (h *OwnerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "owner_not_found",
			Err:     errors.New("owner not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
