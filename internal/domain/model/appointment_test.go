package model

import "testing"

func TestParseAppointmentStatus(t *testing.T) {
	cases := map[string]struct {
		want AppointmentStatus
		ok   bool
	}{
		"scheduled":  {AppointmentScheduled, true},
		" Completed": {AppointmentCompleted, true},
		"CANCELLED":  {AppointmentCancelled, true},
		"no_show":    {AppointmentNoShow, true},
		"noshow":     {"", false},
		"":           {"", false},
	}
	for in, tc := range cases {
		got, ok := ParseAppointmentStatus(in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseAppointmentStatus(%q) = %q,%v want %q,%v", in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCreateAppointmentRequest_Validate(t *testing.T) {
	req := CreateAppointmentRequest{
		PetID:     "pet-1",
		ServiceID: "svc-1",
		Date:      "2026-09-15",
		TimeOfDay: "14:30",
	}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Status != AppointmentScheduled {
		t.Fatalf("status should default to scheduled, got %q", req.Status)
	}

	bad := req
	bad.Date = "15/09/2026"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected date format error")
	}

	bad = req
	bad.TimeOfDay = "2pm"
	if err := bad.Validate(); err == nil {
		t.Fatal("expected time format error")
	}

	bad = req
	bad.PetID = " "
	if err := bad.Validate(); err == nil {
		t.Fatal("expected pet_id error")
	}
}

func TestUpdateAppointmentRequest_Validate(t *testing.T) {
	empty := UpdateAppointmentRequest{}
	if err := empty.Validate(); err == nil {
		t.Fatal("expected error when no fields set")
	}

	status := AppointmentStatus("Completed ")
	req := UpdateAppointmentRequest{Status: &status}
	if err := req.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *req.Status != AppointmentCompleted {
		t.Fatalf("status not normalized: %q", *req.Status)
	}
}
