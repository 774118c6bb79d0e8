package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("email already registered")

	// Pet repository sentinels.
	ErrPetNotFound = errors.New("pet not found")

	// Owner repository sentinels.
	ErrOwnerNotFound    = errors.New("owner not found")
	ErrOwnerEmailExists = errors.New("owner email already exists")

	// Service repository sentinels.
	ErrServiceNotFound   = errors.New("service not found")
	ErrServiceNameExists = errors.New("service name already exists")

	// Appointment repository sentinels.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrAppointmentRefNotFound is returned when pet_id or service_id does not reference an existing row.
	ErrAppointmentRefNotFound = errors.New("referenced pet or service not found")

	// Adoption repository sentinels.
	ErrAdoptionNotFound = errors.New("adoption application not found")
)
