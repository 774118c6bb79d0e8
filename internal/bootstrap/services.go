package bootstrap

import (
	"database/sql"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Fadhail/petshop-api/config"
	"github.com/Fadhail/petshop-api/internal/data"
	"github.com/Fadhail/petshop-api/internal/service"
)

// Repositories groups the Postgres-backed repositories.
type Repositories struct {
	Users        *data.UserRepo
	Pets         *data.PetRepo
	Owners       *data.OwnerRepo
	Services     *data.ServiceRepo
	Appointments *data.AppointmentRepo
	Adoptions    *data.AdoptionRepo
}

// BuildRepositories wires the repositories over a shared database handle.
func BuildRepositories(db *sql.DB) Repositories {
	return Repositories{
		Users:        data.NewUserRepo(db),
		Pets:         data.NewPetRepo(db),
		Owners:       data.NewOwnerRepo(db),
		Services:     data.NewServiceRepo(db),
		Appointments: data.NewAppointmentRepo(db),
		Adoptions:    data.NewAdoptionRepo(db),
	}
}

// Services groups the application services the HTTP layer consumes.
type Services struct {
	Auth         *service.AuthService
	Pets         *service.PetService
	Owners       *service.OwnerService
	Catalog      *service.CatalogService
	Appointments *service.AppointmentService
	Adoptions    *service.AdoptionService
	Stats        *service.StatsService
}

// ServicesConfig contains dependencies for BuildServices.
type ServicesConfig struct {
	Config      config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices constructs every application service over shared repositories.
func BuildServices(cfg ServicesConfig) Services {
	repos := BuildRepositories(cfg.DB)

	return Services{
		Auth: BuildAuthService(AuthConfig{
			Auth:        cfg.Config.Auth,
			Users:       repos.Users,
			RedisClient: cfg.RedisClient,
			Logger:      cfg.Logger,
		}),
		Pets: service.NewPetService(service.PetServiceOptions{
			PetRepo:   repos.Pets,
			OwnerRepo: repos.Owners,
		}),
		Owners: service.NewOwnerService(service.OwnerServiceOptions{
			OwnerRepo: repos.Owners,
		}),
		Catalog: service.NewCatalogService(service.CatalogServiceOptions{
			ServiceRepo: repos.Services,
		}),
		Appointments: service.NewAppointmentService(service.AppointmentServiceOptions{
			AppointmentRepo: repos.Appointments,
			PetRepo:         repos.Pets,
			ServiceRepo:     repos.Services,
		}),
		Adoptions: service.NewAdoptionService(service.AdoptionServiceOptions{
			AdoptionRepo: repos.Adoptions,
			PetRepo:      repos.Pets,
		}),
		Stats: service.NewStatsService(service.StatsServiceOptions{
			PetRepo:         repos.Pets,
			OwnerRepo:       repos.Owners,
			ServiceRepo:     repos.Services,
			AppointmentRepo: repos.Appointments,
			AdoptionRepo:    repos.Adoptions,
		}),
	}
}
