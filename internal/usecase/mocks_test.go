package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/places-sync/internal/domain"
)

// MockPlacesAPI is a mock of PlacesAPI
type MockPlacesAPI struct {
	mock.Mock
}

func (m *MockPlacesAPI) Search(ctx context.Context, text string) domain.Outcome[[]domain.Candidate] {
	args := m.Called(ctx, text)
	return args.Get(0).(domain.Outcome[[]domain.Candidate])
}

func (m *MockPlacesAPI) Details(ctx context.Context, placeID string) domain.Outcome[domain.RawDetails] {
	args := m.Called(ctx, placeID)
	return args.Get(0).(domain.Outcome[domain.RawDetails])
}

// MockPlaceRepository is a mock of PlaceRepository
type MockPlaceRepository struct {
	mock.Mock
}

func (m *MockPlaceRepository) FindByPlaceID(ctx context.Context, placeID string) (*domain.Place, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) Upsert(ctx context.Context, place *domain.Place) (*domain.Place, error) {
	args := m.Called(ctx, place)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Place), args.Error(1)
}

func (m *MockPlaceRepository) ListQueries(ctx context.Context) ([]domain.PlaceQuery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PlaceQuery), args.Error(1)
}

// mockPlaceWithID - матчер для Upsert по place_id
func mockPlaceWithID(placeID string) interface{} {
	return mock.MatchedBy(func(p *domain.Place) bool {
		return p.PlaceID == placeID
	})
}
