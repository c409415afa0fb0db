package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/infrastructure/googleplaces"
	"github.com/places-sync/internal/pkg/errors"
	"github.com/places-sync/internal/usecase"
)

func newBatchUseCase(api *MockPlacesAPI, repo *MockPlaceRepository) *usecase.BatchSyncUseCase {
	syncUC := usecase.NewSyncUseCase(api, repo, googleplaces.MapDetails, zap.NewNop(), fixedClock)
	return usecase.NewBatchSyncUseCase(repo, syncUC, zap.NewNop())
}

func TestBatchSyncUseCase_SyncAll(t *testing.T) {
	ctx := context.Background()

	t.Run("one failing item does not halt the run", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		repo.On("ListQueries", ctx).Return([]domain.PlaceQuery{
			{PlaceID: "good1"},
			{PlaceID: "bad"},
			{PlaceID: "good2"},
		}, nil)

		for _, id := range []string{"good1", "good2"} {
			api.On("Details", ctx, id).Return(detailsOutcome(map[string]interface{}{
				"id":          id,
				"displayName": map[string]interface{}{"text": "Place " + id},
			}))
		}
		api.On("Details", ctx, "bad").
			Return(domain.Fail[domain.RawDetails]("google places API error: status 500"))

		repo.On("Upsert", ctx, mockPlaceWithID("good1")).
			Return(&domain.Place{PlaceID: "good1"}, nil)
		repo.On("Upsert", ctx, mockPlaceWithID("good2")).
			Return(&domain.Place{PlaceID: "good2"}, nil)

		var progress []domain.SyncProgress
		summary, err := newBatchUseCase(api, repo).SyncAll(ctx, func(p domain.SyncProgress) {
			progress = append(progress, p)
		})

		require.NoError(t, err)
		assert.Equal(t, 3, summary.Total)
		assert.Equal(t, 2, summary.Synced)
		assert.Equal(t, []string{"bad"}, summary.Failed)

		// Прогресс репортится после каждой записи
		require.Len(t, progress, 3)
		assert.Equal(t, 1, progress[0].Step)
		assert.Equal(t, 3, progress[0].Total)
		assert.InDelta(t, 1.0/3.0, progress[0].Fraction, 1e-9)
		assert.Equal(t, 1.0, progress[2].Fraction)
		assert.Equal(t, []string{"bad"}, progress[2].Failed)
	})

	t.Run("empty store finishes immediately", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		repo.On("ListQueries", ctx).Return([]domain.PlaceQuery{}, nil)

		summary, err := newBatchUseCase(api, repo).SyncAll(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, 0, summary.Total)
		assert.Empty(t, summary.Failed)
	})

	t.Run("enumeration failure is returned", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		repo.On("ListQueries", ctx).Return(nil, errors.ErrDatabaseError)

		summary, err := newBatchUseCase(api, repo).SyncAll(ctx, nil)

		assert.Nil(t, summary)
		assert.Equal(t, errors.ErrDatabaseError, err)
	})

	t.Run("cancellation stops between items", func(t *testing.T) {
		api := new(MockPlacesAPI)
		repo := new(MockPlaceRepository)

		cancelCtx, cancel := context.WithCancel(ctx)

		repo.On("ListQueries", cancelCtx).Return([]domain.PlaceQuery{
			{PlaceID: "first"},
			{PlaceID: "second"},
		}, nil)
		api.On("Details", cancelCtx, "first").Return(detailsOutcome(map[string]interface{}{
			"id":          "first",
			"displayName": map[string]interface{}{"text": "First"},
		}))
		repo.On("Upsert", cancelCtx, mockPlaceWithID("first")).
			Return(&domain.Place{PlaceID: "first"}, nil)

		summary, err := newBatchUseCase(api, repo).SyncAll(cancelCtx, func(p domain.SyncProgress) {
			cancel() // отменяем после первой записи
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, summary.Synced)
		api.AssertNotCalled(t, "Details", cancelCtx, "second")
	})
}
