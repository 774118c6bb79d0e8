package service

import (
	"context"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/domain/model"
)

// AppointmentServiceOptions groups dependencies for AppointmentService.
type AppointmentServiceOptions struct {
	AppointmentRepo core.AppointmentRepository
	PetRepo         core.PetRepository
	ServiceRepo     core.ServiceRepository
}

// AppointmentService orchestrates appointment booking.
type AppointmentService struct {
	appointments core.AppointmentRepository
	pets         core.PetRepository
	services     core.ServiceRepository
}

// NewAppointmentService constructs a new AppointmentService.
func NewAppointmentService(opts AppointmentServiceOptions) *AppointmentService {
	return &AppointmentService{
		appointments: opts.AppointmentRepo,
		pets:         opts.PetRepo,
		services:     opts.ServiceRepo,
	}
}

// Create books an appointment. The referenced pet and service must exist;
// the FK check in the repo backstops this but a lookup here gives callers a
// precise not-found error instead of a constraint violation.
func (s *AppointmentService) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if req != nil {
		if err := req.Validate(); err != nil {
			return nil, err
		}
		if s.pets != nil {
			if _, err := s.pets.GetByID(ctx, req.PetID); err != nil {
				return nil, err
			}
		}
		if s.services != nil {
			if _, err := s.services.GetByID(ctx, req.ServiceID); err != nil {
				return nil, err
			}
		}
	}
	return s.appointments.Create(ctx, req)
}

// GetByID retrieves an appointment by ID.
func (s *AppointmentService) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// List returns a page of appointments.
func (s *AppointmentService) List(ctx context.Context, limit, offset int) ([]*model.Appointment, error) {
	return s.appointments.List(ctx, limit, offset)
}

// Update updates an appointment.
func (s *AppointmentService) Update(ctx context.Context, id string, req model.UpdateAppointmentRequest) (*model.Appointment, error) {
	return s.appointments.Update(ctx, id, req)
}

// Delete deletes an appointment by ID.
func (s *AppointmentService) Delete(ctx context.Context, id string) (bool, error) {
	return s.appointments.Delete(ctx, id)
}
