package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/Fadhail/petshop-api/internal/domain/auth"
	"github.com/Fadhail/petshop-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth         AuthServiceInterface
	Pets         *service.PetService
	Owners       *service.OwnerService
	Catalog      *service.CatalogService
	Appointments *service.AppointmentService
	Adoptions    *service.AdoptionService
	Stats        *service.StatsService
	CookieDomain string
	Logger       *slog.Logger
}

// NewRouter creates and configures the HTTP router with guard middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{
		Svc:          services.Auth,
		CookieDomain: services.CookieDomain,
		Logger:       services.Logger,
	}
	guards := guardSet{auth: services.Auth}

	registerAuthRoutes(mux, authHandlers, guards)
	registerPetRoutes(mux, &PetHandlers{Svc: services.Pets}, guards)
	registerOwnerRoutes(mux, &OwnerHandlers{Svc: services.Owners}, guards)
	registerServiceRoutes(mux, &ServiceHandlers{Svc: services.Catalog}, guards)
	registerAppointmentRoutes(mux, &AppointmentHandlers{Svc: services.Appointments}, guards)
	registerAdoptionRoutes(mux, &AdoptionHandlers{Svc: services.Adoptions}, guards)

	statsHandlers := &StatsHandlers{Svc: services.Stats}
	mux.Handle("GET /api/stats", http.HandlerFunc(statsHandlers.Overview))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return BrowserDetection()(mux)
}

// guardSet bundles the capability wrappers registered on routes.
// With a nil auth service everything is left open; that only happens in
// focused handler tests, never in bootstrap.
type guardSet struct {
	auth SessionResolver
}

func (g guardSet) wrap(capability domainauth.Capability) func(http.Handler) http.Handler {
	if g.auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return Guard(g.auth, capability)
}

func (g guardSet) optional() func(http.Handler) http.Handler {
	if g.auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return OptionalSession(g.auth)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers, g guardSet) {
	publicOnly := g.wrap(domainauth.CapabilityPublicOnly)
	authed := g.wrap(domainauth.CapabilityAnyAuthenticated)

	mux.Handle("POST /api/auth/register", publicOnly(http.HandlerFunc(h.Register)))
	mux.Handle("POST /api/auth/login", publicOnly(http.HandlerFunc(h.Login)))
	mux.Handle("POST /api/auth/logout", authed(http.HandlerFunc(h.Logout)))
	mux.Handle("GET /api/auth/me", authed(http.HandlerFunc(h.Me)))

	// SSO endpoints answer sso_disabled in password mode.
	mux.Handle("GET /api/auth/sso/login", publicOnly(http.HandlerFunc(h.SSOLogin)))
	mux.HandleFunc("GET /api/auth/callback", h.SSOCallback)
}

func registerPetRoutes(mux *http.ServeMux, h *PetHandlers, g guardSet) {
	optional := g.optional()
	admin := g.wrap(domainauth.CapabilityAdminOnly)

	// Browsing the adoptable catalog needs no account.
	mux.Handle("GET /api/pets", optional(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/pets/{id}", optional(http.HandlerFunc(h.GetByID)))

	mux.Handle("POST /api/pets", admin(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/pets/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/pets/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerOwnerRoutes(mux *http.ServeMux, h *OwnerHandlers, g guardSet) {
	admin := g.wrap(domainauth.CapabilityAdminOnly)

	mux.Handle("POST /api/owners", admin(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/owners", admin(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/owners/{id}", admin(http.HandlerFunc(h.GetByID)))
	mux.Handle("PUT /api/owners/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/owners/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerServiceRoutes(mux *http.ServeMux, h *ServiceHandlers, g guardSet) {
	optional := g.optional()
	admin := g.wrap(domainauth.CapabilityAdminOnly)

	mux.Handle("GET /api/services", optional(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/services/{id}", optional(http.HandlerFunc(h.GetByID)))

	mux.Handle("POST /api/services", admin(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/services/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/services/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerAppointmentRoutes(mux *http.ServeMux, h *AppointmentHandlers, g guardSet) {
	authed := g.wrap(domainauth.CapabilityAnyAuthenticated)
	admin := g.wrap(domainauth.CapabilityAdminOnly)

	mux.Handle("GET /api/appointments", authed(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/appointments/{id}", authed(http.HandlerFunc(h.GetByID)))

	mux.Handle("POST /api/appointments", admin(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/appointments/{id}", admin(http.HandlerFunc(h.Update)))
	mux.Handle("DELETE /api/appointments/{id}", admin(http.HandlerFunc(h.Delete)))
}

func registerAdoptionRoutes(mux *http.ServeMux, h *AdoptionHandlers, g guardSet) {
	authed := g.wrap(domainauth.CapabilityAnyAuthenticated)
	admin := g.wrap(domainauth.CapabilityAdminOnly)

	mux.Handle("POST /api/adoptions", authed(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/adoptions/my", authed(http.HandlerFunc(h.ListMine)))
	mux.Handle("GET /api/adoptions/{id}", authed(http.HandlerFunc(h.GetByID)))

	mux.Handle("GET /api/adoptions", admin(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/adoptions/status/{status}", admin(http.HandlerFunc(h.ListByStatus)))
	mux.Handle("GET /api/adoptions/pet/{petId}", admin(http.HandlerFunc(h.ListByPet)))
	mux.Handle("GET /api/adoptions/stats", admin(http.HandlerFunc(h.Stats)))
	mux.Handle("PUT /api/adoptions/{id}/status", admin(http.HandlerFunc(h.UpdateStatus)))
	mux.Handle("DELETE /api/adoptions/{id}", admin(http.HandlerFunc(h.Delete)))
}
