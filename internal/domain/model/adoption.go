package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Fadhail/petshop-api/internal/validation"
)

const (
	maxApplicantNameLen = 100
	maxApplicantText    = 2000
)

// AdoptionStatus tracks the lifecycle of an adoption application.
// An application starts pending and moves at most once to a terminal state.
type AdoptionStatus string

const (
	AdoptionPending  AdoptionStatus = "pending"
	AdoptionApproved AdoptionStatus = "approved"
	AdoptionRejected AdoptionStatus = "rejected"
)

// Valid reports whether the status is supported.
func (s AdoptionStatus) Valid() bool {
	switch s {
	case AdoptionPending, AdoptionApproved, AdoptionRejected:
		return true
	default:
		return false
	}
}

// Terminal reports whether no further transition is permitted out of s.
func (s AdoptionStatus) Terminal() bool {
	return s == AdoptionApproved || s == AdoptionRejected
}

// CanTransitionTo reports whether s → next is a legal transition.
// Same-status is allowed so that retried updates stay idempotent; callers
// distinguish the no-op case themselves.
func (s AdoptionStatus) CanTransitionTo(next AdoptionStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	// pending is the only state with outgoing edges, and none lead back to it.
	return s == AdoptionPending && next.Terminal()
}

// ParseAdoptionStatus normalizes a status string and reports whether it is supported.
func ParseAdoptionStatus(value string) (AdoptionStatus, bool) {
	s := AdoptionStatus(strings.ToLower(strings.TrimSpace(value)))
	if s.Valid() {
		return s, true
	}
	return "", false
}

// Adoption represents a user's application to adopt a specific pet.
// PetName is denormalized at submission time so admin lists render without a
// join even after the pet record changes.
type Adoption struct {
	ID               string         `json:"id"                           db:"id"`
	PetID            string         `json:"pet_id"                       db:"pet_id"`
	PetName          string         `json:"pet_name"                     db:"pet_name"`
	UserID           string         `json:"user_id"                      db:"user_id"`
	Name             string         `json:"name"                         db:"name"`
	Email            string         `json:"email"                        db:"email"`
	Phone            string         `json:"phone"                        db:"phone"`
	Address          string         `json:"address"                      db:"address"`
	Experience       *string        `json:"experience,omitempty"         db:"experience"`
	Reason           string         `json:"reason"                       db:"reason"`
	LivingSpace      string         `json:"living_space"                 db:"living_space"`
	HasOtherPets     bool           `json:"has_other_pets"               db:"has_other_pets"`
	OtherPetsDetails *string        `json:"other_pets_details,omitempty" db:"other_pets_details"`
	Status           AdoptionStatus `json:"status"                       db:"status"`
	DecidedAt        *time.Time     `json:"decided_at,omitempty"         db:"decided_at"`
	CreatedAt        time.Time      `json:"created_at"                   db:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"                   db:"updated_at"`
}

// CreateAdoptionRequest represents an application submission.
// UserID and PetName are filled by the service layer, not the client.
type CreateAdoptionRequest struct {
	PetID            string  `json:"pet_id"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Address          string  `json:"address"`
	Experience       *string `json:"experience,omitempty"`
	Reason           string  `json:"reason"`
	LivingSpace      string  `json:"living_space"`
	HasOtherPets     bool    `json:"has_other_pets"`
	OtherPetsDetails *string `json:"other_pets_details,omitempty"`

	UserID  string `json:"-"`
	PetName string `json:"-"`
}

// Validate validates CreateAdoptionRequest with per-field messages so the
// submitting form can surface each offending field inline.
func (r *CreateAdoptionRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	r.Reason = strings.TrimSpace(r.Reason)
	r.LivingSpace = strings.TrimSpace(r.LivingSpace)

	fv := validation.New().
		Validate("pet_id", r.PetID, validation.Required("Pet", 64)).
		Validate("name", r.Name, validation.Required("Name", maxApplicantNameLen)).
		Validate("email", r.Email, validation.Required("Email", maxUserEmailLen), validation.Email("Email")).
		Validate("phone", r.Phone, validation.Required("Phone", maxOwnerPhoneLen)).
		Validate("address", r.Address, validation.Required("Address", maxOwnerAddressLen)).
		Validate("reason", r.Reason, validation.Required("Reason", maxApplicantText)).
		Validate("living_space", r.LivingSpace, validation.Required("Living space", maxApplicantText))
	errs := fv.Errors()
	if errs == nil {
		errs = map[string]string{}
	}
	if r.Experience != nil && utf8.RuneCountInString(*r.Experience) > maxApplicantText {
		errs["experience"] = "Experience cannot exceed 2000 characters."
	}
	if r.HasOtherPets && (r.OtherPetsDetails == nil || strings.TrimSpace(*r.OtherPetsDetails) == "") {
		errs["other_pets_details"] = "Describe the other pets in the household."
	}
	if r.OtherPetsDetails != nil && utf8.RuneCountInString(*r.OtherPetsDetails) > maxApplicantText {
		errs["other_pets_details"] = "Details cannot exceed 2000 characters."
	}
	if len(errs) > 0 {
		return FieldErrors(errs)
	}
	return nil
}

// UpdateAdoptionStatusRequest asks for a status transition on an application.
type UpdateAdoptionStatusRequest struct {
	Status AdoptionStatus `json:"status"`
}

// Validate validates UpdateAdoptionStatusRequest.
func (r *UpdateAdoptionStatusRequest) Validate() error {
	normalized, ok := ParseAdoptionStatus(string(r.Status))
	if !ok {
		return errors.New("status must be one of: pending, approved, rejected")
	}
	r.Status = normalized
	return nil
}

// AdoptionListOptions controls paging and filtering for listing applications.
// Status and PetID filter exactly; UserID restricts to one applicant's rows.
type AdoptionListOptions struct {
	Limit  int
	Offset int
	Status *AdoptionStatus
	PetID  *string
	UserID *string
}

// AdoptionStats aggregates application counts per status.
type AdoptionStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}
