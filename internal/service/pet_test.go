package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Fadhail/petshop-api/internal/data"
	"github.com/Fadhail/petshop-api/internal/domain/model"
	"github.com/Fadhail/petshop-api/internal/mocks"
)

func TestPetService_Create_ChecksOwnerExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	pets := mocks.NewMockPetRepository(ctrl)
	owners := mocks.NewMockOwnerRepository(ctrl)
	svc := NewPetService(PetServiceOptions{PetRepo: pets, OwnerRepo: owners})

	ownerID := "owner-1"
	owners.EXPECT().
		GetByID(gomock.Any(), ownerID).
		Return(&model.Owner{ID: ownerID, Name: "Sam"}, nil)
	pets.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *model.CreatePetRequest) (*model.Pet, error) {
			return &model.Pet{ID: "pet-1", Name: req.Name, OwnerID: req.OwnerID}, nil
		})

	pet, err := svc.Create(context.Background(), &model.CreatePetRequest{
		Name:    "Whiskers",
		Species: "cat",
		OwnerID: &ownerID,
	})
	require.NoError(t, err)
	require.NotNil(t, pet.OwnerID)
	assert.Equal(t, ownerID, *pet.OwnerID)
}

func TestPetService_Create_UnknownOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	pets := mocks.NewMockPetRepository(ctrl)
	owners := mocks.NewMockOwnerRepository(ctrl)
	svc := NewPetService(PetServiceOptions{PetRepo: pets, OwnerRepo: owners})

	ownerID := "no-such-owner"
	owners.EXPECT().
		GetByID(gomock.Any(), ownerID).
		Return(nil, data.ErrOwnerNotFound)
	// The pet repo must not be touched when the owner lookup fails.

	_, err := svc.Create(context.Background(), &model.CreatePetRequest{
		Name:    "Whiskers",
		Species: "cat",
		OwnerID: &ownerID,
	})
	assert.ErrorIs(t, err, data.ErrOwnerNotFound)
}

func TestPetService_Create_NoOwnerSkipsLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	pets := mocks.NewMockPetRepository(ctrl)
	owners := mocks.NewMockOwnerRepository(ctrl)
	svc := NewPetService(PetServiceOptions{PetRepo: pets, OwnerRepo: owners})

	pets.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&model.Pet{ID: "pet-1", Name: "Whiskers"}, nil)

	pet, err := svc.Create(context.Background(), &model.CreatePetRequest{Name: "Whiskers", Species: "cat"})
	require.NoError(t, err)
	assert.Nil(t, pet.OwnerID)
}
