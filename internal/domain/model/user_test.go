package model

import (
	"errors"
	"testing"
)

func TestRegisterRequest_Validate(t *testing.T) {
	req := RegisterRequest{Name: " Ana ", Email: " ANA@Example.com ", Password: "hunter2hunter2"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Email != "ana@example.com" {
		t.Fatalf("email not normalized: %q", req.Email)
	}
	if req.Name != "Ana" {
		t.Fatalf("name not trimmed: %q", req.Name)
	}
}

func TestRegisterRequest_Validate_FieldErrors(t *testing.T) {
	req := RegisterRequest{Email: "nope", Password: "short"}
	err := req.Validate()

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"name", "email", "password"} {
		if fe[field] == "" {
			t.Errorf("missing error for %q: %v", field, fe)
		}
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Email: "Admin@Petshop.com", Password: "secret"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Email != "admin@petshop.com" {
		t.Fatalf("email not normalized: %q", req.Email)
	}
	if err := (&LoginRequest{Email: "a@b.co"}).Validate(); err == nil {
		t.Fatal("expected error for missing password")
	}
}
