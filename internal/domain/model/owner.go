package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Fadhail/petshop-api/internal/validation"
)

const (
	maxOwnerNameLen    = 100
	maxOwnerPhoneLen   = 30
	maxOwnerAddressLen = 500
)

// Owner represents a registered pet owner.
type Owner struct {
	ID        string    `json:"id"              db:"id"`
	Name      string    `json:"name"            db:"name"`
	Email     string    `json:"email"           db:"email"`
	Phone     string    `json:"phone"           db:"phone"`
	Address   *string   `json:"address,omitempty" db:"address"`
	CreatedAt time.Time `json:"created_at"      db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"      db:"updated_at"`
}

// CreateOwnerRequest represents parameters to create an Owner.
type CreateOwnerRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Address *string `json:"address,omitempty"`
}

// UpdateOwnerRequest represents parameters to update an Owner.
type UpdateOwnerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// Validate validates CreateOwnerRequest.
func (r *CreateOwnerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)

	if errs := validation.New().
		Validate("name", r.Name, validation.Required("Name", maxOwnerNameLen)).
		Validate("email", r.Email, validation.Required("Email", maxUserEmailLen), validation.Email("Email")).
		Validate("phone", r.Phone, validation.Required("Phone", maxOwnerPhoneLen)).
		Errors(); errs != nil {
		return FieldErrors(errs)
	}
	if r.Address != nil && utf8.RuneCountInString(*r.Address) > maxOwnerAddressLen {
		return FieldErrors{"address": "Address cannot exceed 500 characters."}
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateOwnerRequest.
func (r *UpdateOwnerRequest) HasUpdates() bool {
	return r.Name != nil || r.Email != nil || r.Phone != nil || r.Address != nil
}

// Validate validates UpdateOwnerRequest.
func (r *UpdateOwnerRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*r.Email))
		if msg := validation.Email("Email")(e); e == "" || msg != "" {
			return errors.New("email must be a valid email address")
		}
		*r.Email = e
	}
	if r.Phone != nil && strings.TrimSpace(*r.Phone) == "" {
		return errors.New("phone cannot be empty")
	}
	if r.Address != nil && utf8.RuneCountInString(*r.Address) > maxOwnerAddressLen {
		return errors.New("address cannot exceed 500 characters")
	}
	return nil
}
