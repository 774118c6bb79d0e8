package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxAppointmentNotesLen = 2000

// AppointmentStatus tracks the lifecycle of a booked appointment.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether the appointment status is supported.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled, AppointmentNoShow:
		return true
	default:
		return false
	}
}

// ParseAppointmentStatus normalizes a status string and reports whether it is supported.
func ParseAppointmentStatus(value string) (AppointmentStatus, bool) {
	s := AppointmentStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Appointment represents a pet booked for a service at a date and time.
// Date and TimeOfDay are kept as the wire strings ("2006-01-02", "15:04")
// the admin UI submits; the database stores them in native types.
type Appointment struct {
	ID        string            `json:"id"               db:"id"`
	PetID     string            `json:"pet_id"           db:"pet_id"`
	ServiceID string            `json:"service_id"       db:"service_id"`
	Date      string            `json:"appointment_date" db:"appointment_date"`
	TimeOfDay string            `json:"appointment_time" db:"appointment_time"`
	Notes     *string           `json:"notes,omitempty"  db:"notes"`
	Status    AppointmentStatus `json:"status"           db:"status"`
	CreatedAt time.Time         `json:"created_at"       db:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"       db:"updated_at"`
}

// CreateAppointmentRequest represents parameters to create an Appointment.
type CreateAppointmentRequest struct {
	PetID     string            `json:"pet_id"`
	ServiceID string            `json:"service_id"`
	Date      string            `json:"appointment_date"`
	TimeOfDay string            `json:"appointment_time"`
	Notes     *string           `json:"notes,omitempty"`
	Status    AppointmentStatus `json:"status,omitempty"`
}

// UpdateAppointmentRequest represents parameters to update an Appointment.
type UpdateAppointmentRequest struct {
	PetID     *string            `json:"pet_id,omitempty"`
	ServiceID *string            `json:"service_id,omitempty"`
	Date      *string            `json:"appointment_date,omitempty"`
	TimeOfDay *string            `json:"appointment_time,omitempty"`
	Notes     *string            `json:"notes,omitempty"`
	Status    *AppointmentStatus `json:"status,omitempty"`
}

// Validate validates CreateAppointmentRequest.
func (r *CreateAppointmentRequest) Validate() error {
	if strings.TrimSpace(r.PetID) == "" {
		return errors.New("pet_id is required")
	}
	if strings.TrimSpace(r.ServiceID) == "" {
		return errors.New("service_id is required")
	}
	if err := validateAppointmentDate(r.Date); err != nil {
		return err
	}
	if err := validateAppointmentTime(r.TimeOfDay); err != nil {
		return err
	}
	if r.Notes != nil && utf8.RuneCountInString(*r.Notes) > maxAppointmentNotesLen {
		return errors.New("notes cannot exceed 2000 characters")
	}
	if r.Status == "" {
		r.Status = AppointmentScheduled
	}
	normalized, ok := ParseAppointmentStatus(string(r.Status))
	if !ok {
		return errors.New("invalid status")
	}
	r.Status = normalized
	return nil
}

// HasUpdates reports whether any field is set in UpdateAppointmentRequest.
func (r *UpdateAppointmentRequest) HasUpdates() bool {
	return r.PetID != nil || r.ServiceID != nil || r.Date != nil || r.TimeOfDay != nil ||
		r.Notes != nil || r.Status != nil
}

// Validate validates UpdateAppointmentRequest.
func (r *UpdateAppointmentRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.PetID != nil && strings.TrimSpace(*r.PetID) == "" {
		return errors.New("pet_id cannot be empty")
	}
	if r.ServiceID != nil && strings.TrimSpace(*r.ServiceID) == "" {
		return errors.New("service_id cannot be empty")
	}
	if r.Date != nil {
		if err := validateAppointmentDate(*r.Date); err != nil {
			return err
		}
	}
	if r.TimeOfDay != nil {
		if err := validateAppointmentTime(*r.TimeOfDay); err != nil {
			return err
		}
	}
	if r.Notes != nil && utf8.RuneCountInString(*r.Notes) > maxAppointmentNotesLen {
		return errors.New("notes cannot exceed 2000 characters")
	}
	if r.Status != nil {
		normalized, ok := ParseAppointmentStatus(string(*r.Status))
		if !ok {
			return errors.New("invalid status")
		}
		*r.Status = normalized
	}
	return nil
}

func validateAppointmentDate(v string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(v)); err != nil {
		return errors.New("appointment_date must be YYYY-MM-DD")
	}
	return nil
}

func validateAppointmentTime(v string) error {
	if _, err := time.Parse("15:04", strings.TrimSpace(v)); err != nil {
		return errors.New("appointment_time must be HH:MM")
	}
	return nil
}
