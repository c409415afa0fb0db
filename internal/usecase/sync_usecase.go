package usecase

import (
	"context"
	"time"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/domain/repository"
	"go.uber.org/zap"
)

// DetailsMapper - чистая функция преобразования сырого ответа API в Place
type DetailsMapper func(raw domain.RawDetails) *domain.Place

// SyncUseCase - оркестратор синхронизации одного места.
// Последовательность: резолв place_id через поиск (если задан только lookup),
// запрос деталей, маппинг, upsert. Любой сбой на любом шаге превращается в
// no-op: синхронизация - best-effort обогащение и никогда не блокирует
// вызывающую сторону.
type SyncUseCase struct {
	placesAPI repository.PlacesAPI
	placeRepo repository.PlaceRepository
	mapper    DetailsMapper
	logger    *zap.Logger
	now       func() time.Time
}

// NewSyncUseCase создает новый SyncUseCase.
// now инжектируется для тестируемости штампа UpdatedAt; в продакшене - time.Now.
func NewSyncUseCase(
	placesAPI repository.PlacesAPI,
	placeRepo repository.PlaceRepository,
	mapper DetailsMapper,
	logger *zap.Logger,
	now func() time.Time,
) *SyncUseCase {
	if now == nil {
		now = time.Now
	}
	return &SyncUseCase{
		placesAPI: placesAPI,
		placeRepo: placeRepo,
		mapper:    mapper,
		logger:    logger,
		now:       now,
	}
}

// Sync выполняет одну попытку синхронизации.
// Первое возвращаемое значение всегда true ("можно продолжать"): решение
// игнорировать сбой принимается здесь, на границе оркестрации, осознанно и
// явно. Второе значение - сохранённая запись или nil, если обогащение
// не состоялось.
func (uc *SyncUseCase) Sync(ctx context.Context, query domain.PlaceQuery) (bool, *domain.Place) {
	if query.IsEmpty() {
		return true, nil
	}

	placeID := query.PlaceID
	if placeID == "" {
		placeID = uc.resolvePlaceID(ctx, query.Lookup)
		if placeID == "" {
			return true, nil
		}
	}

	raw, ok := uc.fetchDetails(ctx, placeID)
	if !ok {
		return true, nil
	}

	place := uc.mapper(raw)
	place.UpdatedAt = uc.now().UTC()

	stored, err := uc.placeRepo.Upsert(ctx, place)
	if err != nil {
		uc.logger.Error("Failed to persist place",
			zap.String("place_id", place.PlaceID),
			zap.String("display_name", place.DisplayName),
			zap.Error(err))
		return true, nil
	}

	return true, stored
}

// resolvePlaceID ищет place_id по строке поиска.
// Берётся первый кандидат с непустым ID; пустая выдача или Failure - no-op.
func (uc *SyncUseCase) resolvePlaceID(ctx context.Context, lookup string) string {
	outcome := uc.placesAPI.Search(ctx, lookup)
	if !outcome.Success {
		uc.logger.Warn("Place search failed",
			zap.String("lookup", lookup),
			zap.String("error", outcome.Error))
		return ""
	}

	if len(outcome.Data) == 0 || outcome.Data[0].PlaceID == "" {
		uc.logger.Info("No candidates found for lookup",
			zap.String("lookup", lookup))
		return ""
	}

	return outcome.Data[0].PlaceID
}

// fetchDetails запрашивает детали места
func (uc *SyncUseCase) fetchDetails(ctx context.Context, placeID string) (domain.RawDetails, bool) {
	outcome := uc.placesAPI.Details(ctx, placeID)
	if !outcome.Success {
		uc.logger.Warn("Place details fetch failed",
			zap.String("place_id", placeID),
			zap.String("error", outcome.Error))
		return domain.RawDetails{}, false
	}

	if len(outcome.Data.Payload) == 0 {
		uc.logger.Warn("Place details payload is empty",
			zap.String("place_id", placeID))
		return domain.RawDetails{}, false
	}

	return outcome.Data, true
}
