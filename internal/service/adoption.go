package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/domain/model"
)

var (
	// ErrInvalidStatusTransition is returned when an application is asked to
	// move to a status its current status has no edge to.
	ErrInvalidStatusTransition = errors.New("invalid adoption status transition")
	// ErrPetNotAdoptable is returned when applying for a pet that already has an owner.
	ErrPetNotAdoptable = errors.New("pet already has an owner")
)

// AdoptionServiceOptions groups dependencies for AdoptionService.
type AdoptionServiceOptions struct {
	AdoptionRepo core.AdoptionRepository
	PetRepo      core.PetRepository
}

// AdoptionService orchestrates adoption applications and their status machine.
type AdoptionService struct {
	adoptions core.AdoptionRepository
	pets      core.PetRepository
}

// NewAdoptionService constructs a new AdoptionService.
func NewAdoptionService(opts AdoptionServiceOptions) *AdoptionService {
	return &AdoptionService{adoptions: opts.AdoptionRepo, pets: opts.PetRepo}
}

// Create submits an application for the signed-in user. The pet must exist
// and be adoptable; its name is denormalized onto the application at
// submission time.
func (s *AdoptionService) Create(ctx context.Context, userID string, req *model.CreateAdoptionRequest) (*model.Adoption, error) {
	if req == nil {
		return nil, errors.New("create adoption request is required")
	}
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pet, err := s.pets.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, err
	}
	if pet.OwnerID != nil {
		return nil, ErrPetNotAdoptable
	}

	req.UserID = userID
	req.PetName = pet.Name
	return s.adoptions.Create(ctx, req)
}

// GetByID retrieves an application by ID.
func (s *AdoptionService) GetByID(ctx context.Context, id string) (*model.Adoption, error) {
	return s.adoptions.GetByID(ctx, id)
}

// List returns applications matching opts.
func (s *AdoptionService) List(ctx context.Context, opts model.AdoptionListOptions) ([]*model.Adoption, error) {
	return s.adoptions.List(ctx, opts)
}

// ListForUser returns one applicant's applications.
func (s *AdoptionService) ListForUser(ctx context.Context, userID string, limit, offset int) ([]*model.Adoption, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	return s.adoptions.List(ctx, model.AdoptionListOptions{
		Limit:  limit,
		Offset: offset,
		UserID: &userID,
	})
}

// UpdateStatus applies a status transition. Repeating the current status is
// an idempotent no-op that returns the unchanged application; any move out of
// a terminal status is rejected with ErrInvalidStatusTransition.
func (s *AdoptionService) UpdateStatus(ctx context.Context, id string, req *model.UpdateAdoptionStatusRequest) (*model.Adoption, error) {
	if req == nil {
		return nil, errors.New("update adoption status request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	current, err := s.adoptions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Status == req.Status {
		return current, nil
	}
	if !current.Status.CanTransitionTo(req.Status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, req.Status)
	}

	return s.adoptions.UpdateStatus(ctx, core.UpdateAdoptionStatusParams{
		ID:        id,
		Status:    req.Status,
		DecidedAt: time.Now().UTC(),
	})
}

// Delete deletes an application by ID.
func (s *AdoptionService) Delete(ctx context.Context, id string) (bool, error) {
	return s.adoptions.Delete(ctx, id)
}

// Stats aggregates application counts per status.
func (s *AdoptionService) Stats(ctx context.Context) (*model.AdoptionStats, error) {
	return s.adoptions.Stats(ctx)
}
