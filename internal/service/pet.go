package service

import (
	"context"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/domain/model"
)

// PetServiceOptions groups dependencies for PetService.
type PetServiceOptions struct {
	PetRepo   core.PetRepository
	OwnerRepo core.OwnerRepository
}

// PetService orchestrates pet CRUD.
type PetService struct {
	pets   core.PetRepository
	owners core.OwnerRepository
}

// NewPetService constructs a new PetService.
func NewPetService(opts PetServiceOptions) *PetService {
	return &PetService{pets: opts.PetRepo, owners: opts.OwnerRepo}
}

// Create creates a pet. When an owner is referenced it must exist.
func (s *PetService) Create(ctx context.Context, req *model.CreatePetRequest) (*model.Pet, error) {
	if req != nil && req.OwnerID != nil && s.owners != nil {
		if _, err := s.owners.GetByID(ctx, *req.OwnerID); err != nil {
			return nil, err
		}
	}
	return s.pets.Create(ctx, req)
}

// GetByID retrieves a pet by ID.
func (s *PetService) GetByID(ctx context.Context, id string) (*model.Pet, error) {
	return s.pets.GetByID(ctx, id)
}

// List returns a page of pets.
func (s *PetService) List(ctx context.Context, limit, offset int) ([]*model.Pet, error) {
	return s.pets.List(ctx, limit, offset)
}

// Update updates a pet.
func (s *PetService) Update(ctx context.Context, id string, req model.UpdatePetRequest) (*model.Pet, error) {
	return s.pets.Update(ctx, id, req)
}

// Delete deletes a pet by ID.
func (s *PetService) Delete(ctx context.Context, id string) (bool, error) {
	return s.pets.Delete(ctx, id)
}
