package httpx

import (
	"errors"
	"net/http"

	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/service"
)

// ServiceHandlers provides HTTP handlers for the care-service catalog.
type ServiceHandlers struct {
	Svc *service.CatalogService
}

// Create handles POST /api/services.
func (h *ServiceHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateServiceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	svc, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, svc)
}

// List handles GET /api/services.
func (h *ServiceHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	services, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, services)
}

// GetByID handles GET /api/services/{id}.
func (h *ServiceHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	svc, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, svc)
}

// Update handles PUT /api/services/{id}.
func (h *ServiceHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateServiceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	svc, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, svc)
}

// Delete handles DELETE /api/services/{id}.
func (h *ServiceHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "service_not_found",
			Err:     errors.New("service not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
