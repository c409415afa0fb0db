package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/infrastructure/googleplaces"
	"github.com/places-sync/internal/pkg/errors"
	"github.com/places-sync/internal/usecase"
)

var fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func newSyncUseCase(api *MockPlacesAPI, repo *MockPlaceRepository) *usecase.SyncUseCase {
	return usecase.NewSyncUseCase(api, repo, googleplaces.MapDetails, zap.NewNop(), fixedClock)
}

func detailsOutcome(payload map[string]interface{}) domain.Outcome[domain.RawDetails] {
	return domain.Ok(domain.RawDetails{Schema: domain.SchemaV1, Payload: payload})
}

func TestSyncUseCase_Sync(t *testing.T) {
	ctx := context.Background()

	t.Run("lookup resolves id then fetches details and persists", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		api.On("Search", ctx, "Example Cafe").Return(domain.Ok([]domain.Candidate{
			{PlaceID: "abc123", DisplayName: "Example Cafe"},
		}))
		api.On("Details", ctx, "abc123").Return(detailsOutcome(map[string]interface{}{
			"id":          "abc123",
			"displayName": map[string]interface{}{"text": "Example Cafe"},
			"location":    map[string]interface{}{"latitude": -33.8, "longitude": 151.2},
		}))
		repo.On("Upsert", ctx, mock.MatchedBy(func(p *domain.Place) bool {
			return p.PlaceID == "abc123" &&
				p.DisplayName == "Example Cafe" &&
				p.Latitude != nil && *p.Latitude == -33.8 &&
				p.Longitude != nil && *p.Longitude == 151.2 &&
				p.UpdatedAt.Equal(fixedNow)
		})).Return(&domain.Place{ID: 1, PlaceID: "abc123", DisplayName: "Example Cafe"}, nil)

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{Lookup: "Example Cafe"})

		assert.True(t, proceed)
		assert.NotNil(t, place)
		assert.Equal(t, "abc123", place.PlaceID)
		api.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("resolved id skips search", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		api.On("Details", ctx, "abc123").Return(detailsOutcome(map[string]interface{}{
			"id":          "abc123",
			"displayName": map[string]interface{}{"text": "Example Cafe"},
		}))
		repo.On("Upsert", ctx, mock.Anything).
			Return(&domain.Place{ID: 1, PlaceID: "abc123", DisplayName: "Example Cafe"}, nil)

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{
			PlaceID: "abc123",
			Lookup:  "this must be ignored",
		})

		assert.True(t, proceed)
		assert.NotNil(t, place)
		api.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("empty query is a no-op", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{})

		assert.True(t, proceed)
		assert.Nil(t, place)
		api.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
		api.AssertNotCalled(t, "Details", mock.Anything, mock.Anything)
	})

	t.Run("search failure still yields proceed", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		api.On("Search", ctx, "+61249291154").
			Return(domain.Fail[[]domain.Candidate]("google places API error: status 500"))

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{Lookup: "+61249291154"})

		assert.True(t, proceed)
		assert.Nil(t, place)
		api.AssertNotCalled(t, "Details", mock.Anything, mock.Anything)
	})

	t.Run("empty candidate list leaves prior state untouched", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		api.On("Search", ctx, "nowhere").Return(domain.Ok([]domain.Candidate{}))

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{Lookup: "nowhere"})

		assert.True(t, proceed)
		assert.Nil(t, place)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("candidate with empty id leaves prior state untouched", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		api.On("Search", ctx, "odd").Return(domain.Ok([]domain.Candidate{{PlaceID: ""}}))

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{Lookup: "odd"})

		assert.True(t, proceed)
		assert.Nil(t, place)
	})

	t.Run("details failure still yields proceed", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		api.On("Details", ctx, "abc123").
			Return(domain.Fail[domain.RawDetails]("Server Error"))

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{PlaceID: "abc123"})

		assert.True(t, proceed)
		assert.Nil(t, place)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("empty details payload is a no-op", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		api.On("Details", ctx, "abc123").Return(detailsOutcome(map[string]interface{}{}))

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{PlaceID: "abc123"})

		assert.True(t, proceed)
		assert.Nil(t, place)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("persist failure still yields proceed", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		api.On("Details", ctx, "abc123").Return(detailsOutcome(map[string]interface{}{
			"id": "abc123",
		}))
		repo.On("Upsert", ctx, mock.Anything).Return(nil, errors.ErrValidationError)

		proceed, place := newSyncUseCase(api, repo).Sync(ctx, domain.PlaceQuery{PlaceID: "abc123"})

		assert.True(t, proceed)
		assert.Nil(t, place)
	})
}
