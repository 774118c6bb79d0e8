package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxPetNameLen    = 100
	maxPetSpeciesLen = 60
	maxPetAge        = 200
	maxImageURLLen   = 2048
)

// PetGender is the recorded gender of a pet, free of breeding semantics.
type PetGender string

const (
	PetGenderMale    PetGender = "male"
	PetGenderFemale  PetGender = "female"
	PetGenderUnknown PetGender = "unknown"
)

// Valid reports whether the gender is supported.
func (g PetGender) Valid() bool {
	switch g {
	case PetGenderMale, PetGenderFemale, PetGenderUnknown:
		return true
	default:
		return false
	}
}

// normalizePetGender trims and lowercases the input, defaulting to unknown when empty.
func normalizePetGender(g PetGender) PetGender {
	normalized := PetGender(strings.ToLower(strings.TrimSpace(string(g))))
	if normalized == "" {
		return PetGenderUnknown
	}
	return normalized
}

// Pet represents an animal managed by the shop. OwnerID is nil while the pet
// is available for adoption.
type Pet struct {
	ID        string    `json:"id"                  db:"id"`
	Name      string    `json:"name"                db:"name"`
	Species   string    `json:"species"             db:"species"`
	Age       int       `json:"age"                 db:"age"`
	Gender    PetGender `json:"gender"              db:"gender"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	OwnerID   *string   `json:"owner_id,omitempty"  db:"owner_id"`
	CreatedAt time.Time `json:"created_at"          db:"created_at"`
	UpdatedAt time.Time `json:"updated_at"          db:"updated_at"`
}

// CreatePetRequest represents parameters to create a Pet.
type CreatePetRequest struct {
	Name     string    `json:"name"`
	Species  string    `json:"species"`
	Age      int       `json:"age"`
	Gender   PetGender `json:"gender,omitempty"`
	ImageURL *string   `json:"image_url,omitempty"`
	OwnerID  *string   `json:"owner_id,omitempty"`
}

// UpdatePetRequest represents parameters to update a Pet.
type UpdatePetRequest struct {
	Name     *string    `json:"name,omitempty"`
	Species  *string    `json:"species,omitempty"`
	Age      *int       `json:"age,omitempty"`
	Gender   *PetGender `json:"gender,omitempty"`
	ImageURL *string    `json:"image_url,omitempty"`
	OwnerID  *string    `json:"owner_id,omitempty"`
}

// Validate validates CreatePetRequest.
func (r *CreatePetRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxPetNameLen {
		return errors.New("name cannot exceed 100 characters")
	}
	if strings.TrimSpace(r.Species) == "" {
		return errors.New("species is required")
	}
	if utf8.RuneCountInString(r.Species) > maxPetSpeciesLen {
		return errors.New("species cannot exceed 60 characters")
	}
	if r.Age < 0 || r.Age > maxPetAge {
		return errors.New("age must be between 0 and 200")
	}
	r.Gender = normalizePetGender(r.Gender)
	if !r.Gender.Valid() {
		return errors.New("invalid gender")
	}
	if r.ImageURL != nil && utf8.RuneCountInString(*r.ImageURL) > maxImageURLLen {
		return errors.New("image_url is too long")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdatePetRequest.
func (r *UpdatePetRequest) HasUpdates() bool {
	return r.Name != nil || r.Species != nil || r.Age != nil || r.Gender != nil ||
		r.ImageURL != nil || r.OwnerID != nil
}

// Validate validates UpdatePetRequest, ensuring at least one field is set and values are sane.
func (r *UpdatePetRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxPetNameLen {
			return errors.New("name cannot exceed 100 characters")
		}
	}
	if r.Species != nil && strings.TrimSpace(*r.Species) == "" {
		return errors.New("species cannot be empty")
	}
	if r.Age != nil && (*r.Age < 0 || *r.Age > maxPetAge) {
		return errors.New("age must be between 0 and 200")
	}
	if r.Gender != nil {
		g := normalizePetGender(*r.Gender)
		if !g.Valid() {
			return errors.New("invalid gender")
		}
		*r.Gender = g
	}
	if r.ImageURL != nil && utf8.RuneCountInString(*r.ImageURL) > maxImageURLLen {
		return errors.New("image_url is too long")
	}
	return nil
}
