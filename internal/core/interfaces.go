package core

import (
	"context"
	"time"

	"github.com/Fadhail/petshop-api/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Count(ctx context.Context) (int, error)
}

// PetRepository defines the interface for pet data operations.
type PetRepository interface {
	Create(ctx context.Context, req *model.CreatePetRequest) (*model.Pet, error)
	GetByID(ctx context.Context, id string) (*model.Pet, error)
	List(ctx context.Context, limit, offset int) ([]*model.Pet, error)
	Update(ctx context.Context, id string, req model.UpdatePetRequest) (*model.Pet, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// OwnerRepository defines the interface for owner data operations.
type OwnerRepository interface {
	Create(ctx context.Context, req *model.CreateOwnerRequest) (*model.Owner, error)
	GetByID(ctx context.Context, id string) (*model.Owner, error)
	List(ctx context.Context, limit, offset int) ([]*model.Owner, error)
	Update(ctx context.Context, id string, req model.UpdateOwnerRequest) (*model.Owner, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ServiceRepository defines the interface for care-service data operations.
type ServiceRepository interface {
	Create(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error)
	GetByID(ctx context.Context, id string) (*model.Service, error)
	List(ctx context.Context, limit, offset int) ([]*model.Service, error)
	Update(ctx context.Context, id string, req model.UpdateServiceRequest) (*model.Service, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// AppointmentRepository defines the interface for appointment data operations.
type AppointmentRepository interface {
	Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	List(ctx context.Context, limit, offset int) ([]*model.Appointment, error)
	Update(ctx context.Context, id string, req model.UpdateAppointmentRequest) (*model.Appointment, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// UpdateAdoptionStatusParams groups parameters for AdoptionRepository.UpdateStatus.
type UpdateAdoptionStatusParams struct {
	ID        string
	Status    model.AdoptionStatus
	DecidedAt time.Time
}

// AdoptionRepository defines the interface for adoption-application data operations.
type AdoptionRepository interface {
	Create(ctx context.Context, req *model.CreateAdoptionRequest) (*model.Adoption, error)
	GetByID(ctx context.Context, id string) (*model.Adoption, error)
	List(ctx context.Context, opts model.AdoptionListOptions) ([]*model.Adoption, error)
	// UpdateStatus persists a validated transition and returns the updated row.
	// Transition legality is the service layer's concern, not the repository's.
	UpdateStatus(ctx context.Context, params UpdateAdoptionStatusParams) (*model.Adoption, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context) (*model.AdoptionStats, error)
}
