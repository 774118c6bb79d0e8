package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Fadhail/petshop-api/internal/data"
	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/service"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// parseLimitOffset reads limit/offset query params with defaults and caps.
func parseLimitOffset(r *http.Request) (limit, offset int) {
	limit = defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = min(n, maxListLimit)
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// notFoundCodes maps data-layer not-found sentinels to stable API error codes.
var notFoundCodes = map[error]string{
	data.ErrUserNotFound:           "user_not_found",
	data.ErrPetNotFound:            "pet_not_found",
	data.ErrOwnerNotFound:          "owner_not_found",
	data.ErrServiceNotFound:        "service_not_found",
	data.ErrAppointmentNotFound:    "appointment_not_found",
	data.ErrAppointmentRefNotFound: "appointment_ref_not_found",
	data.ErrAdoptionNotFound:       "adoption_not_found",
}

var conflictCodes = map[error]string{
	data.ErrUserEmailExists:            "email_exists",
	data.ErrOwnerEmailExists:           "owner_email_exists",
	data.ErrServiceNameExists:          "service_name_exists",
	service.ErrInvalidStatusTransition: "invalid_status_transition",
	service.ErrPetNotAdoptable:         "pet_not_adoptable",
}

// writeServiceError maps service/data-layer errors onto the JSON error shape.
// Unmapped errors come back as a generic 500; the detail still reaches the
// client message, which is acceptable for an internal admin API.
func writeServiceError(w http.ResponseWriter, err error) {
	var fieldErrs model.FieldErrors
	if errors.As(err, &fieldErrs) {
		WriteFieldErrors(w, fieldErrs)
		return
	}

	for sentinel, code := range notFoundCodes {
		if errors.Is(err, sentinel) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: code, Err: err})
			return
		}
	}
	for sentinel, code := range conflictCodes {
		if errors.Is(err, sentinel) {
			WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: code, Err: err})
			return
		}
	}

	WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
}
