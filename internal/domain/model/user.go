package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Fadhail/petshop-api/internal/domain/auth"
	"github.com/Fadhail/petshop-api/internal/validation"
)

const (
	maxUserNameLen  = 100
	maxUserEmailLen = 255
	minPasswordLen  = 8
	maxPasswordLen  = 72 // bcrypt input limit
)

// User represents a portal account.
// PasswordHash never leaves the server; the json tag strips it from responses.
type User struct {
	ID           string    `json:"id"         db:"id"`
	Name         string    `json:"name"       db:"name"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	Role         auth.Role `json:"role"       db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest represents parameters to create a User.
// Role is set by the caller (registration always passes auth.RoleUser);
// PasswordHash is produced by the service layer, never accepted from clients.
type CreateUserRequest struct {
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         auth.Role `json:"-"`
}

// Validate validates CreateUserRequest.
func (r *CreateUserRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	if errs := validation.New().
		Validate("name", r.Name, validation.Required("Name", maxUserNameLen)).
		Validate("email", r.Email, validation.Required("Email", maxUserEmailLen), validation.Email("Email")).
		Errors(); errs != nil {
		return FieldErrors(errs)
	}
	if r.PasswordHash == "" {
		return errors.New("password hash is required")
	}
	if r.Role != auth.RoleAdmin && r.Role != auth.RoleUser {
		return errors.New("invalid role")
	}
	return nil
}

// RegisterRequest is the public registration payload.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates RegisterRequest with per-field messages.
func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))

	fv := validation.New().
		Validate("name", r.Name, validation.Required("Name", maxUserNameLen)).
		Validate("email", r.Email, validation.Required("Email", maxUserEmailLen), validation.Email("Email"))
	errs := fv.Errors()
	if errs == nil {
		errs = map[string]string{}
	}
	switch n := utf8.RuneCountInString(r.Password); {
	case n == 0:
		errs["password"] = "Password is required."
	case n < minPasswordLen:
		errs["password"] = "Password must be at least 8 characters."
	case n > maxPasswordLen:
		errs["password"] = "Password cannot exceed 72 characters."
	}
	if len(errs) > 0 {
		return FieldErrors(errs)
	}
	return nil
}

// LoginRequest is the credential payload for password login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates LoginRequest.
func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}
