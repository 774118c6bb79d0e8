package httpx

import (
	"errors"
	"net/http"

	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/service"
)

// AppointmentHandlers provides HTTP handlers for appointment booking.
type AppointmentHandlers struct {
	Svc *service.AppointmentService
}

// Create handles POST /api/appointments.
func (h *AppointmentHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAppointmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	appt, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, appt)
}

// List handles GET /api/appointments.
func (h *AppointmentHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r)
	appts, err := h.Svc.List(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, appts)
}

// GetByID handles GET /api/appointments/{id}.
func (h *AppointmentHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	appt, err := h.Svc.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, appt)
}

// Update handles PUT /api/appointments/{id}.
func (h *AppointmentHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAppointmentRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeServiceError(w, err)
		return
	}

	appt, err := h.Svc.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, appt)
}

// Delete handles DELETE /api/appointments/{id}.
func (h *AppointmentHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Svc.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, ErrorParams{
			Code:    http.StatusNotFound,
			ErrCode: "appointment_not_found",
			Err:     errors.New("appointment not found"),
		})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
