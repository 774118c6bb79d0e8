// Package devseed populates a development database with a known admin
// account and a small set of pets, owners, and care services so the API is
// immediately usable after first boot.
package devseed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Fadhail/petshop-api/internal/data"
	domainauth "github.com/Fadhail/petshop-api/internal/domain/auth"
	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/ports"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB     *sql.DB
	users  *data.UserRepo
	pets   *data.PetRepo
	owners *data.OwnerRepo
	care   *data.ServiceRepo
	hasher ports.PasswordHasher
}

// NewServices constructs the repositories used for seeding over the provided DB.
func NewServices(db *sql.DB, hasher ports.PasswordHasher) Services {
	return Services{
		DB:     db,
		users:  data.NewUserRepo(db),
		pets:   data.NewPetRepo(db),
		owners: data.NewOwnerRepo(db),
		care:   data.NewServiceRepo(db),
		hasher: hasher,
	}
}

// Run executes the full development seeding workflow against the provided DB.
// Seeding is idempotent: rows that already exist are left alone.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	if err := seedAdminAccount(ctx, svcs, logger); err != nil {
		return err
	}

	failures := 0
	failures += seedOwners(ctx, svcs.owners, logger)
	failures += seedPets(ctx, svcs.pets, logger)
	failures += seedCareServices(ctx, svcs.care, logger)

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

// seedAdminAccount creates the dev admin sign-in. Without it a fresh
// database has no account that can reach the admin surface.
func seedAdminAccount(ctx context.Context, svcs Services, logger *slog.Logger) error {
	const adminEmail = "admin@petshop.local"

	hash, err := svcs.hasher.Hash("admin-dev-password")
	if err != nil {
		return fmt.Errorf("hash dev admin password: %w", err)
	}

	_, err = svcs.users.Create(ctx, &model.CreateUserRequest{
		Name:         "Dev Admin",
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         domainauth.RoleAdmin,
	})
	switch {
	case errors.Is(err, data.ErrUserEmailExists):
		if logger != nil {
			logger.InfoContext(ctx, "dev admin already exists", "email", adminEmail)
		}
	case err != nil:
		return fmt.Errorf("create dev admin: %w", err)
	default:
		if logger != nil {
			logger.InfoContext(ctx, "created dev admin", "email", adminEmail)
		}
	}
	return nil
}

func seedOwners(ctx context.Context, repo *data.OwnerRepo, logger *slog.Logger) int {
	address := "42 Clover Lane"
	owners := []*model.CreateOwnerRequest{
		{Name: "Maya Chen", Email: "maya@example.com", Phone: "555-0101", Address: &address},
		{Name: "Tom Okafor", Email: "tom@example.com", Phone: "555-0102"},
	}

	failures := 0
	for _, req := range owners {
		_, err := repo.Create(ctx, req)
		switch {
		case errors.Is(err, data.ErrOwnerEmailExists):
			if logger != nil {
				logger.InfoContext(ctx, "owner already exists", "email", req.Email)
			}
		case err != nil:
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create owner", "email", req.Email, "error", err)
			}
			failures++
		default:
			if logger != nil {
				logger.InfoContext(ctx, "created owner", "email", req.Email)
			}
		}
	}
	return failures
}

func seedPets(ctx context.Context, repo *data.PetRepo, logger *slog.Logger) int {
	// Pets have no natural unique key, so skip when any pets already exist.
	count, err := repo.Count(ctx)
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to count pets", "error", err)
		}
		return 1
	}
	if count > 0 {
		if logger != nil {
			logger.InfoContext(ctx, "pets already seeded", "count", count)
		}
		return 0
	}

	pets := []*model.CreatePetRequest{
		{Name: "Whiskers", Species: "cat", Age: 3, Gender: model.PetGenderFemale},
		{Name: "Rex", Species: "dog", Age: 5, Gender: model.PetGenderMale},
		{Name: "Nibbles", Species: "rabbit", Age: 1, Gender: model.PetGenderUnknown},
		{Name: "Sunny", Species: "bird", Age: 2, Gender: model.PetGenderMale},
	}

	failures := 0
	for _, req := range pets {
		if _, createErr := repo.Create(ctx, req); createErr != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create pet", "name", req.Name, "error", createErr)
			}
			failures++
			continue
		}
		if logger != nil {
			logger.InfoContext(ctx, "created pet", "name", req.Name, "species", req.Species)
		}
	}
	return failures
}

func seedCareServices(ctx context.Context, repo *data.ServiceRepo, logger *slog.Logger) int {
	grooming := "Full wash, trim, and nail clipping."
	checkup := "General health examination by a veterinarian."
	boarding := "Overnight boarding with feeding and walks."
	services := []*model.CreateServiceRequest{
		{Name: "Grooming", Description: &grooming, PriceCents: 4500, DurationMinutes: 60},
		{Name: "Health Checkup", Description: &checkup, PriceCents: 8000, DurationMinutes: 30},
		{Name: "Boarding (per night)", Description: &boarding, PriceCents: 3500, DurationMinutes: 720},
	}

	failures := 0
	for _, req := range services {
		_, err := repo.Create(ctx, req)
		switch {
		case errors.Is(err, data.ErrServiceNameExists):
			if logger != nil {
				logger.InfoContext(ctx, "care service already exists", "name", req.Name)
			}
		case err != nil:
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create care service", "name", req.Name, "error", err)
			}
			failures++
		default:
			if logger != nil {
				logger.InfoContext(ctx, "created care service", "name", req.Name)
			}
		}
	}
	return failures
}
