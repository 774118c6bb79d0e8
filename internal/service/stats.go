package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Fadhail/petshop-api/internal/core"
)

// StatsServiceOptions groups dependencies for StatsService.
type StatsServiceOptions struct {
	PetRepo         core.PetRepository
	OwnerRepo       core.OwnerRepository
	ServiceRepo     core.ServiceRepository
	AppointmentRepo core.AppointmentRepository
	AdoptionRepo    core.AdoptionRepository
}

// StatsService aggregates entity counts for the landing page and admin dashboard.
type StatsService struct {
	pets         core.PetRepository
	owners       core.OwnerRepository
	services     core.ServiceRepository
	appointments core.AppointmentRepository
	adoptions    core.AdoptionRepository
}

// NewStatsService constructs a new StatsService.
func NewStatsService(opts StatsServiceOptions) *StatsService {
	return &StatsService{
		pets:         opts.PetRepo,
		owners:       opts.OwnerRepo,
		services:     opts.ServiceRepo,
		appointments: opts.AppointmentRepo,
		adoptions:    opts.AdoptionRepo,
	}
}

// Overview is the public stats payload.
type Overview struct {
	Pets         int `json:"pets"`
	Owners       int `json:"owners"`
	Services     int `json:"services"`
	Appointments int `json:"appointments"`
	Adoptions    int `json:"adoptions"`
}

// Overview counts each entity. The counts are independent queries, so they
// run concurrently.
func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	out := &Overview{}

	g, ctx := errgroup.WithContext(ctx)

	counts := []struct {
		name string
		fn   func(context.Context) (int, error)
		dst  *int
	}{
		{"pets", s.pets.Count, &out.Pets},
		{"owners", s.owners.Count, &out.Owners},
		{"services", s.services.Count, &out.Services},
		{"appointments", s.appointments.Count, &out.Appointments},
	}
	for _, c := range counts {
		g.Go(func() error {
			n, err := c.fn(ctx)
			if err != nil {
				return fmt.Errorf("count %s: %w", c.name, err)
			}
			*c.dst = n
			return nil
		})
	}

	g.Go(func() error {
		adoptionStats, err := s.adoptions.Stats(ctx)
		if err != nil {
			return fmt.Errorf("count adoptions: %w", err)
		}
		out.Adoptions = adoptionStats.Total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
