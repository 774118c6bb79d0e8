package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/Fadhail/petshop-api/config"
)

func TestBuildAuthServiceReturnsNilWithoutRedis(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		auth config.AuthConfig
	}{
		{
			name: "password mode",
			auth: config.AuthConfig{
				Mode:       config.AuthModePassword,
				AdminGroup: "admins",
				UserGroup:  "users",
			},
		},
		{
			name: "mock sso mode",
			auth: config.AuthConfig{
				Mode:       config.AuthModeMock,
				AdminGroup: "admins",
				UserGroup:  "users",
				DevAuth: config.DevAuthConfig{
					UserID: "dev",
					Email:  "dev@example.com",
					Groups: []string{"admins"},
				},
			},
		},
		{
			name: "sso mode",
			auth: config.AuthConfig{
				Mode:       config.AuthModeSSO,
				AdminGroup: "admins",
				UserGroup:  "users",
				OAuth: config.OAuthConfig{
					ClientID:     "client-id",
					ClientSecret: "client-secret",
					DiscoveryURL: "https://issuer.example.com",
					RedirectURL:  "https://app.example.com/api/auth/callback",
					Scope:        "openid",
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := AuthConfig{
				Auth:        tt.auth,
				RedisClient: nil,
				Logger:      logger,
			}

			if svc := BuildAuthService(cfg); svc != nil {
				t.Fatalf("BuildAuthService() = %v, want nil", svc)
			}
		})
	}
}

func TestBuildAuthServicePasswordMode(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// The client lazily connects, so construction alone needs no server.
	cfg := AuthConfig{
		Auth: config.AuthConfig{
			Mode:       config.AuthModePassword,
			AdminGroup: "admins",
			UserGroup:  "users",
		},
		RedisClient: redis.NewClient(&redis.Options{Addr: "localhost:0"}),
		Logger:      logger,
	}

	if svc := BuildAuthService(cfg); svc == nil {
		t.Fatal("BuildAuthService() = nil, want service")
	}
}

func TestBuildAuthServiceSSOModeRequiresDiscoveryURL(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := AuthConfig{
		Auth: config.AuthConfig{
			Mode:       config.AuthModeSSO,
			AdminGroup: "admins",
			UserGroup:  "users",
			OAuth: config.OAuthConfig{
				ClientID:     "client-id",
				ClientSecret: "client-secret",
				// DiscoveryURL intentionally absent
			},
		},
		RedisClient: redis.NewClient(&redis.Options{Addr: "localhost:0"}),
		Logger:      logger,
	}

	if svc := BuildAuthService(cfg); svc != nil {
		t.Fatalf("BuildAuthService() = %v, want nil", svc)
	}
}
