package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/data"
	domainauth "github.com/Fadhail/petshop-api/internal/domain/auth"
	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/mocks"
	mockauth "github.com/Fadhail/petshop-api/internal/mocks/auth"
	"github.com/Fadhail/petshop-api/internal/service"
)

type adoptionTestEnv struct {
	router    http.Handler
	adoptions *mocks.MockAdoptionRepository
	pets      *mocks.MockPetRepository
}

// newAdoptionTestEnv builds a router with a real adoption service over mocked
// repositories, plus seeded admin and user sessions.
func newAdoptionTestEnv(t *testing.T) *adoptionTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	adoptions := mocks.NewMockAdoptionRepository(ctrl)
	pets := mocks.NewMockPetRepository(ctrl)

	sessions := mockauth.NewMemorySessionStore()
	expiry := time.Now().Add(time.Hour)
	for token, role := range map[string]domainauth.Role{
		"admin-token": domainauth.RoleAdmin,
		"user-token":  domainauth.RoleUser,
	} {
		require.NoError(t, sessions.Save(context.Background(), domainauth.Session{
			Token:     token,
			UserID:    string(role) + "-1",
			Role:      role,
			ExpiresAt: expiry,
		}))
	}

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Sessions: sessions,
		Hasher:   mockauth.PlainHasher{},
	})
	adoptionSvc := service.NewAdoptionService(service.AdoptionServiceOptions{
		AdoptionRepo: adoptions,
		PetRepo:      pets,
	})

	router := NewRouter(RouterServices{Auth: authSvc, Adoptions: adoptionSvc})
	return &adoptionTestEnv{router: router, adoptions: adoptions, pets: pets}
}

func (e *adoptionTestEnv) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

const adoptionBody = `{
	"pet_id": "pet-1",
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "555-0101",
	"address": "12 Main St",
	"reason": "Quiet home, lifelong cat person.",
	"living_space": "Apartment"
}`

func TestAdoptionHandlers_Create(t *testing.T) {
	env := newAdoptionTestEnv(t)

	env.pets.EXPECT().
		GetByID(gomock.Any(), "pet-1").
		Return(&model.Pet{ID: "pet-1", Name: "Whiskers"}, nil)
	env.adoptions.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateAdoptionRequest) (*model.Adoption, error) {
			assert.Equal(t, "user-1", req.UserID)
			assert.Equal(t, "Whiskers", req.PetName)
			return &model.Adoption{ID: "a1", PetID: req.PetID, PetName: req.PetName, UserID: req.UserID, Status: model.AdoptionPending}, nil
		})

	rec := env.do(jsonRequest(http.MethodPost, "/api/adoptions", adoptionBody), "user-token")

	require.Equal(t, http.StatusCreated, rec.Code)
	var adoption model.Adoption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adoption))
	assert.Equal(t, model.AdoptionPending, adoption.Status)
}

func TestAdoptionHandlers_Create_RequiresAuth(t *testing.T) {
	env := newAdoptionTestEnv(t)

	rec := env.do(jsonRequest(http.MethodPost, "/api/adoptions", adoptionBody), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdoptionHandlers_Create_OwnedPet(t *testing.T) {
	env := newAdoptionTestEnv(t)

	ownerID := "owner-1"
	env.pets.EXPECT().
		GetByID(gomock.Any(), "pet-1").
		Return(&model.Pet{ID: "pet-1", Name: "Whiskers", OwnerID: &ownerID}, nil)

	rec := env.do(jsonRequest(http.MethodPost, "/api/adoptions", adoptionBody), "user-token")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "pet_not_adoptable", errCodeOf(t, rec))
}

func TestAdoptionHandlers_GetByID_Ownership(t *testing.T) {
	env := newAdoptionTestEnv(t)

	mine := &model.Adoption{ID: "a1", UserID: "user-1", Status: model.AdoptionPending}
	foreign := &model.Adoption{ID: "a2", UserID: "someone-else", Status: model.AdoptionPending}
	env.adoptions.EXPECT().GetByID(gomock.Any(), "a1").Return(mine, nil).AnyTimes()
	env.adoptions.EXPECT().GetByID(gomock.Any(), "a2").Return(foreign, nil).AnyTimes()

	// The applicant sees their own application.
	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/adoptions/a1", nil), "user-token")
	assert.Equal(t, http.StatusOK, rec.Code)

	// A foreign application reads as not-found, not forbidden.
	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/adoptions/a2", nil), "user-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "adoption_not_found", errCodeOf(t, rec))

	// Admins see everything.
	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/adoptions/a2", nil), "admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdoptionHandlers_UpdateStatus(t *testing.T) {
	env := newAdoptionTestEnv(t)

	env.adoptions.EXPECT().
		GetByID(gomock.Any(), "a1").
		Return(&model.Adoption{ID: "a1", Status: model.AdoptionPending}, nil)
	env.adoptions.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.UpdateAdoptionStatusParams) (*model.Adoption, error) {
			decidedAt := params.DecidedAt
			return &model.Adoption{ID: "a1", Status: params.Status, DecidedAt: &decidedAt}, nil
		})

	rec := env.do(jsonRequest(http.MethodPut, "/api/adoptions/a1/status", `{"status":"approved"}`), "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	var adoption model.Adoption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &adoption))
	assert.Equal(t, model.AdoptionApproved, adoption.Status)
	assert.NotNil(t, adoption.DecidedAt)
}

func TestAdoptionHandlers_UpdateStatus_TerminalConflict(t *testing.T) {
	env := newAdoptionTestEnv(t)

	env.adoptions.EXPECT().
		GetByID(gomock.Any(), "a1").
		Return(&model.Adoption{ID: "a1", Status: model.AdoptionRejected}, nil)

	rec := env.do(jsonRequest(http.MethodPut, "/api/adoptions/a1/status", `{"status":"approved"}`), "admin-token")

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid_status_transition", errCodeOf(t, rec))
}

func TestAdoptionHandlers_UpdateStatus_AdminOnly(t *testing.T) {
	env := newAdoptionTestEnv(t)

	rec := env.do(jsonRequest(http.MethodPut, "/api/adoptions/a1/status", `{"status":"approved"}`), "user-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdoptionHandlers_ListMine(t *testing.T) {
	env := newAdoptionTestEnv(t)

	env.adoptions.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.AdoptionListOptions) ([]*model.Adoption, error) {
			require.NotNil(t, opts.UserID)
			assert.Equal(t, "user-1", *opts.UserID)
			return []*model.Adoption{{ID: "a1", UserID: "user-1"}}, nil
		})

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/adoptions/my", nil), "user-token")

	require.Equal(t, http.StatusOK, rec.Code)
	var list []*model.Adoption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
}

func TestAdoptionHandlers_ListByStatus(t *testing.T) {
	env := newAdoptionTestEnv(t)

	env.adoptions.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.AdoptionListOptions) ([]*model.Adoption, error) {
			require.NotNil(t, opts.Status)
			assert.Equal(t, model.AdoptionPending, *opts.Status)
			return nil, nil
		})

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/adoptions/status/pending", nil), "admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(httptest.NewRequest(http.MethodGet, "/api/adoptions/status/archived", nil), "admin-token")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdoptionHandlers_Stats(t *testing.T) {
	env := newAdoptionTestEnv(t)

	env.adoptions.EXPECT().
		Stats(gomock.Any()).
		Return(&model.AdoptionStats{Pending: 2, Approved: 1, Rejected: 1, Total: 4}, nil)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/api/adoptions/stats", nil), "admin-token")

	require.Equal(t, http.StatusOK, rec.Code)
	var stats model.AdoptionStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.Total)
}

func TestAdoptionHandlers_Delete_NotFound(t *testing.T) {
	env := newAdoptionTestEnv(t)

	env.adoptions.EXPECT().
		Delete(gomock.Any(), "missing").
		Return(false, data.ErrAdoptionNotFound)

	rec := env.do(httptest.NewRequest(http.MethodDelete, "/api/adoptions/missing", nil), "admin-token")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
