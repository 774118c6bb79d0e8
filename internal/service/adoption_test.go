package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Fadhail/petshop-api/internal/core"
	"github.com/Fadhail/petshop-api/internal/data"
	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/mocks"
)

func newAdoptionService(t *testing.T) (*AdoptionService, *mocks.MockAdoptionRepository, *mocks.MockPetRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	adoptions := mocks.NewMockAdoptionRepository(ctrl)
	pets := mocks.NewMockPetRepository(ctrl)
	svc := NewAdoptionService(AdoptionServiceOptions{AdoptionRepo: adoptions, PetRepo: pets})
	return svc, adoptions, pets
}

func validAdoptionRequest() *model.CreateAdoptionRequest {
	return &model.CreateAdoptionRequest{
		PetID:       "pet-1",
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "555-0101",
		Address:     "12 Main St",
		Reason:      "Lifelong cat person with a quiet home.",
		LivingSpace: "Apartment with a balcony",
	}
}

func TestAdoptionService_Create_FillsUserAndPetName(t *testing.T) {
	svc, adoptions, pets := newAdoptionService(t)

	pets.EXPECT().
		GetByID(gomock.Any(), "pet-1").
		Return(&model.Pet{ID: "pet-1", Name: "Whiskers"}, nil)
	adoptions.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreateAdoptionRequest) (*model.Adoption, error) {
			assert.Equal(t, "user-7", req.UserID)
			assert.Equal(t, "Whiskers", req.PetName)
			return &model.Adoption{
				ID:      "a1",
				PetID:   req.PetID,
				PetName: req.PetName,
				UserID:  req.UserID,
				Status:  model.AdoptionPending,
			}, nil
		})

	adoption, err := svc.Create(context.Background(), "user-7", validAdoptionRequest())
	require.NoError(t, err)
	assert.Equal(t, model.AdoptionPending, adoption.Status)
	assert.Equal(t, "Whiskers", adoption.PetName)
}

func TestAdoptionService_Create_PetNotFound(t *testing.T) {
	svc, _, pets := newAdoptionService(t)

	pets.EXPECT().
		GetByID(gomock.Any(), "pet-1").
		Return(nil, data.ErrPetNotFound)

	_, err := svc.Create(context.Background(), "user-7", validAdoptionRequest())
	assert.ErrorIs(t, err, data.ErrPetNotFound)
}

func TestAdoptionService_Create_OwnedPetNotAdoptable(t *testing.T) {
	svc, _, pets := newAdoptionService(t)

	ownerID := "owner-3"
	pets.EXPECT().
		GetByID(gomock.Any(), "pet-1").
		Return(&model.Pet{ID: "pet-1", Name: "Whiskers", OwnerID: &ownerID}, nil)

	_, err := svc.Create(context.Background(), "user-7", validAdoptionRequest())
	assert.ErrorIs(t, err, ErrPetNotAdoptable)
}

func TestAdoptionService_Create_ValidationError(t *testing.T) {
	svc, _, _ := newAdoptionService(t)

	req := validAdoptionRequest()
	req.Reason = ""
	req.HasOtherPets = true // without details

	_, err := svc.Create(context.Background(), "user-7", req)
	require.Error(t, err)

	var fieldErrs model.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "reason")
	assert.Contains(t, fieldErrs, "other_pets_details")
}

func TestAdoptionService_Create_MissingUserID(t *testing.T) {
	svc, _, _ := newAdoptionService(t)

	_, err := svc.Create(context.Background(), "", validAdoptionRequest())
	assert.Error(t, err)
}

func TestAdoptionService_UpdateStatus_PendingToApproved(t *testing.T) {
	svc, adoptions, _ := newAdoptionService(t)

	adoptions.EXPECT().
		GetByID(gomock.Any(), "a1").
		Return(&model.Adoption{ID: "a1", Status: model.AdoptionPending}, nil)
	adoptions.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params core.UpdateAdoptionStatusParams) (*model.Adoption, error) {
			assert.Equal(t, "a1", params.ID)
			assert.Equal(t, model.AdoptionApproved, params.Status)
			assert.WithinDuration(t, time.Now(), params.DecidedAt, time.Minute)
			decidedAt := params.DecidedAt
			return &model.Adoption{ID: "a1", Status: params.Status, DecidedAt: &decidedAt}, nil
		})

	adoption, err := svc.UpdateStatus(context.Background(), "a1", &model.UpdateAdoptionStatusRequest{Status: model.AdoptionApproved})
	require.NoError(t, err)
	assert.Equal(t, model.AdoptionApproved, adoption.Status)
	require.NotNil(t, adoption.DecidedAt)
}

func TestAdoptionService_UpdateStatus_SameStatusIsNoOp(t *testing.T) {
	svc, adoptions, _ := newAdoptionService(t)

	decidedAt := time.Now().Add(-time.Hour)
	current := &model.Adoption{ID: "a1", Status: model.AdoptionApproved, DecidedAt: &decidedAt}
	adoptions.EXPECT().
		GetByID(gomock.Any(), "a1").
		Return(current, nil)
	// No UpdateStatus expectation: the repo must not be written.

	adoption, err := svc.UpdateStatus(context.Background(), "a1", &model.UpdateAdoptionStatusRequest{Status: model.AdoptionApproved})
	require.NoError(t, err)
	assert.Same(t, current, adoption)
	assert.Equal(t, &decidedAt, adoption.DecidedAt)
}

func TestAdoptionService_UpdateStatus_TerminalIsFinal(t *testing.T) {
	svc, adoptions, _ := newAdoptionService(t)

	adoptions.EXPECT().
		GetByID(gomock.Any(), "a1").
		Return(&model.Adoption{ID: "a1", Status: model.AdoptionApproved}, nil).
		Times(2)

	_, err := svc.UpdateStatus(context.Background(), "a1", &model.UpdateAdoptionStatusRequest{Status: model.AdoptionRejected})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	_, err = svc.UpdateStatus(context.Background(), "a1", &model.UpdateAdoptionStatusRequest{Status: model.AdoptionPending})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestAdoptionService_UpdateStatus_UnknownStatus(t *testing.T) {
	svc, _, _ := newAdoptionService(t)

	_, err := svc.UpdateStatus(context.Background(), "a1", &model.UpdateAdoptionStatusRequest{Status: "archived"})
	assert.Error(t, err)
}

func TestAdoptionService_UpdateStatus_NotFound(t *testing.T) {
	svc, adoptions, _ := newAdoptionService(t)

	adoptions.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, data.ErrAdoptionNotFound)

	_, err := svc.UpdateStatus(context.Background(), "missing", &model.UpdateAdoptionStatusRequest{Status: model.AdoptionApproved})
	assert.ErrorIs(t, err, data.ErrAdoptionNotFound)
}

func TestAdoptionService_ListForUser(t *testing.T) {
	svc, adoptions, _ := newAdoptionService(t)

	adoptions.EXPECT().
		List(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts model.AdoptionListOptions) ([]*model.Adoption, error) {
			require.NotNil(t, opts.UserID)
			assert.Equal(t, "user-7", *opts.UserID)
			assert.Equal(t, 20, opts.Limit)
			return []*model.Adoption{{ID: "a1", UserID: "user-7"}}, nil
		})

	list, err := svc.ListForUser(context.Background(), "user-7", 20, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = svc.ListForUser(context.Background(), "", 20, 0)
	assert.Error(t, err)
}
