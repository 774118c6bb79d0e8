package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/Fadhail/petshop-api/config"
	"github.com/Fadhail/petshop-api/internal/adapters/authroles"
	"github.com/Fadhail/petshop-api/internal/adapters/bcrypt"
	"github.com/Fadhail/petshop-api/internal/adapters/devauth"
	"github.com/Fadhail/petshop-api/internal/adapters/oidc"
	redisadapter "github.com/Fadhail/petshop-api/internal/adapters/redis"
	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/ports"
	"github.com/Fadhail/petshop-api/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth        config.AuthConfig
	Users       core.UserRepository
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Local email/password accounts work in every mode; AUTH_MODE selects which
// SSO provider, if any, is offered on top. Returns nil if configuration is
// invalid.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		}
		return nil
	}

	opts := service.AuthServiceOptions{
		Users:      cfg.Users,
		Sessions:   redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:"),
		Hasher:     bcrypt.NewHasher(cfg.Auth.BcryptCost),
		SessionTTL: cfg.Auth.SessionTTL,
		Roles: authroles.StaticRoleMapper{
			AdminGroup: cfg.Auth.AdminGroup,
			UserGroup:  cfg.Auth.UserGroup,
		},
	}

	switch cfg.Auth.Mode {
	case config.AuthModePassword:
		// No SSO provider; /api/auth/sso/login answers 404.

	case config.AuthModeSSO:
		prov := buildOIDCProvider(cfg)
		if prov == nil {
			return nil
		}
		opts.Provider = prov

	case config.AuthModeMock:
		prov, err := devauth.NewProvider(devauth.Config{
			UserID:          cfg.Auth.DevAuth.UserID,
			Name:            cfg.Auth.DevAuth.Name,
			Email:           cfg.Auth.DevAuth.Email,
			Groups:          cfg.Auth.DevAuth.Groups,
			SessionDuration: cfg.Auth.SessionTTL,
		})
		if err != nil {
			if cfg.Logger != nil {
				cfg.Logger.Warn("failed to create dev auth provider, auth disabled", "error", err)
			}
			return nil
		}
		opts.Provider = prov

	default:
		return nil
	}

	return service.NewAuthService(opts)
}

// buildOIDCProvider builds the real OIDC provider, or nil when the required
// configuration is missing.
//
//nolint:ireturn // the concrete provider type is an implementation detail of this package.
func buildOIDCProvider(cfg AuthConfig) ports.SSOProvider {
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		if cfg.Logger != nil {
			cfg.Logger.Warn("AuthModeSSO selected but required config missing; auth disabled",
				"discovery_url_empty", oauth.DiscoveryURL == "",
				"client_id_empty", oauth.ClientID == "",
				"client_secret_empty", oauth.ClientSecret == "",
			)
		}
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
	})
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("failed to create OIDC provider, auth disabled", "error", err)
		}
		return nil
	}
	return prov
}
