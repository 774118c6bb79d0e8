package model

import (
	"errors"
	"testing"
)

func TestAdoptionStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to AdoptionStatus
		want     bool
	}{
		{AdoptionPending, AdoptionApproved, true},
		{AdoptionPending, AdoptionRejected, true},
		{AdoptionPending, AdoptionPending, true}, // idempotent retry
		{AdoptionApproved, AdoptionApproved, true},
		{AdoptionRejected, AdoptionRejected, true},
		{AdoptionApproved, AdoptionRejected, false},
		{AdoptionApproved, AdoptionPending, false},
		{AdoptionRejected, AdoptionApproved, false},
		{AdoptionRejected, AdoptionPending, false},
		{AdoptionStatus("bogus"), AdoptionApproved, false},
		{AdoptionPending, AdoptionStatus("bogus"), false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestAdoptionStatus_Terminal(t *testing.T) {
	if AdoptionPending.Terminal() {
		t.Fatal("pending is not terminal")
	}
	if !AdoptionApproved.Terminal() || !AdoptionRejected.Terminal() {
		t.Fatal("approved and rejected are terminal")
	}
}

func TestParseAdoptionStatus(t *testing.T) {
	if s, ok := ParseAdoptionStatus(" Approved "); !ok || s != AdoptionApproved {
		t.Fatalf("got %q,%v", s, ok)
	}
	if _, ok := ParseAdoptionStatus("denied"); ok {
		t.Fatal("unknown status must not parse")
	}
}

func validAdoptionRequest() CreateAdoptionRequest {
	return CreateAdoptionRequest{
		PetID:       "pet-1",
		Name:        "Jordan Lee",
		Email:       "jordan@example.com",
		Phone:       "+62 812 0000",
		Address:     "1 Shelter Way",
		Reason:      "Always wanted a cat.",
		LivingSpace: "Apartment with a balcony.",
	}
}

func TestCreateAdoptionRequest_Validate_OK(t *testing.T) {
	req := validAdoptionRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateAdoptionRequest_Validate_FieldErrors(t *testing.T) {
	req := validAdoptionRequest()
	req.Name = "  "
	req.Email = "not-an-email"
	req.Reason = ""

	err := req.Validate()
	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	for _, field := range []string{"name", "email", "reason"} {
		if fe[field] == "" {
			t.Errorf("missing error for %q: %v", field, fe)
		}
	}
	if fe["phone"] != "" {
		t.Errorf("phone was valid, got %q", fe["phone"])
	}
}

func TestCreateAdoptionRequest_Validate_OtherPetsDetails(t *testing.T) {
	req := validAdoptionRequest()
	req.HasOtherPets = true

	err := req.Validate()
	var fe FieldErrors
	if !errors.As(err, &fe) || fe["other_pets_details"] == "" {
		t.Fatalf("expected other_pets_details error, got %v", err)
	}

	details := "an elderly corgi"
	req.OtherPetsDetails = &details
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateAdoptionStatusRequest_Validate(t *testing.T) {
	req := UpdateAdoptionStatusRequest{Status: "APPROVED"}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status != AdoptionApproved {
		t.Fatalf("status not normalized: %q", req.Status)
	}

	bad := UpdateAdoptionStatusRequest{Status: "maybe"}
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for unknown status")
	}
}
