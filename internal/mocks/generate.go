// Package mocks provides mock implementations for testing the petshop portal.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the repository interfaces in internal/core. Regenerate after interface
// changes with:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockAdoptionRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), "id").Return(adoption, nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=user_repository_mock.go github.com/Fadhail/petshop-api/internal/core UserRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=pet_repository_mock.go github.com/Fadhail/petshop-api/internal/core PetRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=owner_repository_mock.go github.com/Fadhail/petshop-api/internal/core OwnerRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=service_repository_mock.go github.com/Fadhail/petshop-api/internal/core ServiceRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=appointment_repository_mock.go github.com/Fadhail/petshop-api/internal/core AppointmentRepository

//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=adoption_repository_mock.go github.com/Fadhail/petshop-api/internal/core AdoptionRepository
