package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxServiceNameLen = 120
	maxServiceDescLen = 2000
	maxServicePrice   = 100_000_000 // cents
	maxServiceMinutes = 24 * 60
)

// Service represents a care offering (grooming, checkup, boarding).
// PriceCents avoids float money arithmetic.
type Service struct {
	ID              string    `json:"id"               db:"id"`
	Name            string    `json:"name"             db:"name"`
	Description     *string   `json:"description,omitempty" db:"description"`
	PriceCents      int       `json:"price_cents"      db:"price_cents"`
	DurationMinutes int       `json:"duration_minutes" db:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"       db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"       db:"updated_at"`
}

// CreateServiceRequest represents parameters to create a Service.
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     *string `json:"description,omitempty"`
	PriceCents      int     `json:"price_cents"`
	DurationMinutes int     `json:"duration_minutes"`
}

// UpdateServiceRequest represents parameters to update a Service.
type UpdateServiceRequest struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	PriceCents      *int    `json:"price_cents,omitempty"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
}

// Validate validates CreateServiceRequest.
func (r *CreateServiceRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxServiceNameLen {
		return errors.New("name cannot exceed 120 characters")
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxServiceDescLen {
		return errors.New("description cannot exceed 2000 characters")
	}
	if r.PriceCents < 0 || r.PriceCents > maxServicePrice {
		return errors.New("price_cents must be between 0 and 100000000")
	}
	if r.DurationMinutes <= 0 || r.DurationMinutes > maxServiceMinutes {
		return errors.New("duration_minutes must be between 1 and 1440")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateServiceRequest.
func (r *UpdateServiceRequest) HasUpdates() bool {
	return r.Name != nil || r.Description != nil || r.PriceCents != nil || r.DurationMinutes != nil
}

// Validate validates UpdateServiceRequest.
func (r *UpdateServiceRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxServiceNameLen {
			return errors.New("name cannot exceed 120 characters")
		}
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxServiceDescLen {
		return errors.New("description cannot exceed 2000 characters")
	}
	if r.PriceCents != nil && (*r.PriceCents < 0 || *r.PriceCents > maxServicePrice) {
		return errors.New("price_cents must be between 0 and 100000000")
	}
	if r.DurationMinutes != nil && (*r.DurationMinutes <= 0 || *r.DurationMinutes > maxServiceMinutes) {
		return errors.New("duration_minutes must be between 1 and 1440")
	}
	return nil
}
