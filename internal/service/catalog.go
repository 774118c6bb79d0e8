package service

import (
	"context"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/domain/model"
)

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	ServiceRepo core.ServiceRepository
}

// CatalogService orchestrates the care-service catalog.
type CatalogService struct {
	services core.ServiceRepository
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	return &CatalogService{services: opts.ServiceRepo}
}

// Create creates a care service offering.
func (s *CatalogService) Create(ctx context.Context, req *model.CreateServiceRequest) (*model.Service, error) {
	return s.services.Create(ctx, req)
}

// GetByID retrieves a service by ID.
func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Service, error) {
	return s.services.GetByID(ctx, id)
}

// List returns a page of services.
func (s *CatalogService) List(ctx context.Context, limit, offset int) ([]*model.Service, error) {
	return s.services.List(ctx, limit, offset)
}

// Update updates a service.
func (s *CatalogService) Update(ctx context.Context, id string, req model.UpdateServiceRequest) (*model.Service, error) {
	return s.services.Update(ctx, id, req)
}

// Delete deletes a service by ID.
func (s *CatalogService) Delete(ctx context.Context, id string) (bool, error) {
	return s.services.Delete(ctx, id)
}
