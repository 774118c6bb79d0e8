package service

import (
	"context"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/domain/model"
)

// OwnerServiceOptions groups dependencies for OwnerService.
type OwnerServiceOptions struct {
	OwnerRepo core.OwnerRepository
}

// OwnerService orchestrates owner CRUD.
type OwnerService struct {
	owners core.OwnerRepository
}

// NewOwnerService constructs a new OwnerService.
func NewOwnerService(opts OwnerServiceOptions) *OwnerService {
	return &OwnerService{owners: opts.OwnerRepo}
}

// Create creates an owner.
func (s *OwnerService) Create(ctx context.Context, req *model.CreateOwnerRequest) (*model.Owner, error) {
	return s.owners.Create(ctx, req)
}

// GetByID retrieves an owner by ID.
func (s *OwnerService) GetByID(ctx context.Context, id string) (*model.Owner, error) {
	return s.owners.GetByID(ctx, id)
}

// List returns a page of owners.
func (s *OwnerService) List(ctx context.Context, limit, offset int) ([]*model.Owner, error) {
	return s.owners.List(ctx, limit, offset)
}

// Update updates an owner.
func (s *OwnerService) Update(ctx context.Context, id string, req model.UpdateOwnerRequest) (*model.Owner, error) {
	return s.owners.Update(ctx, id, req)
}

// Delete deletes an owner by ID.
func (s *OwnerService) Delete(ctx context.Context, id string) (bool, error) {
	return s.owners.Delete(ctx, id)
}
