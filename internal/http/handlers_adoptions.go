package httpx

import (
	"errors"
	"net/http"

	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/service"
)

// AdoptionHandlers provides HTTP handlers for adoption applications.
type AdoptionHandlers struct {
	Svc *service.AdoptionService
}

// Create handles POST /api/adoptions. The applicant is the signed-in user.
func (h *AdoptionHandlers) Create(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	var req model.CreateAdoptionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	adoption, err := h.Svc.Create(r.Context(), session.UserID, &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, adoption)
}

// List handles GET /api/adoptions with optional status and pet_id filters.
func (h *AdoptionHandlers) List(w http.ResponseWriter, r *http.Request) {
	opts, ok := adoptionListOptions(w, r)
	if !ok {
		return
	}

	adoptions, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, adoptions)
}

// ListByStatus handles GET /api/adoptions/status/{status}.
func (h *AdoptionHandlers) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := model.ParseAdoptionStatus(r.PathValue("status"))
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_status",
			Err:     errors.New("status must be one of: pending, approved, rejected"),
		})
		return
	}

	limit, offset := parseLimitOffset(r)
	adoptions, err := h.Svc.List(r.Context(), model.AdoptionListOptions{
		Limit:  limit,
		Offset: offset,
		Status: &status,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, adoptions)
}

// ListByPet handles GET /api/adoptions/pet/{petId}.
func (h *AdoptionHandlers) ListByPet(w http.ResponseWriter, r *http.Request) {
	petID := r.PathValue("petId")
	limit, offset := parseLimitOffset(r)

	adoptions, err := h.Svc.List(r.Context(), model.AdoptionListOptions{
		Limit:  limit,
		Offset: offset,
		PetID:  &petID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, adoptions)
}

// ListMine handles GET /api/adoptions/my for the signed-in applicant.
func (h *AdoptionHandlers) ListMine(w http.ResponseWriter, r *http.Request) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	limit, offset := parseLimitOffset(r)
	adoptions, err := h.Svc.ListForUser(r.Context(), session.UserID, limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, adoptions)
}

// GetByID handles GET /api/adoptions/{id}. Applicants only see their own
// applications; a foreign application answers not-found rather than
// forbidden so IDs can't be enumerated.
func (h *AdoptionHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	adoption, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	session, ok := GetUserSessionFromContext(r.Context())
	if !ok || (!session.IsAdmin() && adoption.UserID != session.UserID) {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "adoption_not_found",
			Err:     errors.New("adoption application not found"),
		})
		return
	}

	WriteJSON(w, http.StatusOK, adoption)
}

// UpdateStatus handles PUT /api/adoptions/{id}/status. Illegal transitions
// come back as 409; repeating the current status succeeds unchanged.
func (h *AdoptionHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAdoptionStatusRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	adoption, err := h.Svc.UpdateStatus(r.Context(), r.PathValue("id"), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, adoption)
}

// Delete handles DELETE /api/adoptions/{id}.
func (h *AdoptionHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "adoption_not_found",
			Err:     errors.New("adoption application not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/adoptions/stats for the admin dashboard.
func (h *AdoptionHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}

// adoptionListOptions builds list options from query params, writing a 400
// and returning false on an unparseable status.
func adoptionListOptions(w http.ResponseWriter, r *http.Request) (model.AdoptionListOptions, bool) {
	limit, offset := parseLimitOffset(r)
	opts := model.AdoptionListOptions{Limit: limit, Offset: offset}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := model.ParseAdoptionStatus(raw)
		if !ok {
			WriteError(w, ErrorParams{
				Code:    http.StatusBadRequest,
				ErrCode: "invalid_status",
				Err:     errors.New("status must be one of: pending, approved, rejected"),
			})
			return model.AdoptionListOptions{}, false
		}
		opts.Status = &status
	}
	if petID := r.URL.Query().Get("pet_id"); petID != "" {
		opts.PetID = &petID
	}
	return opts, true
}
