package usecase

import (
	"context"
	"time"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/domain/repository"
	"github.com/places-sync/internal/pkg/errors"
	"go.uber.org/zap"
)

// PlaceUseCase - чтение мест со сквозной проверкой свежести.
// Запись считается свежей, пока её UpdatedAt приходится на текущий
// календарный день: инвалидация идёт по границе суток, а не по скользящему
// TTL. Часовой пояс сравнения задаётся конфигурацией (по умолчанию UTC).
type PlaceUseCase struct {
	placeRepo repository.PlaceRepository
	syncUC    *SyncUseCase
	logger    *zap.Logger
	location  *time.Location
	now       func() time.Time
}

// NewPlaceUseCase создает новый PlaceUseCase
func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	syncUC *SyncUseCase,
	logger *zap.Logger,
	location *time.Location,
	now func() time.Time,
) *PlaceUseCase {
	if location == nil {
		location = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &PlaceUseCase{
		placeRepo: placeRepo,
		syncUC:    syncUC,
		logger:    logger,
		location:  location,
		now:       now,
	}
}

// FindFresh возвращает запись по place_id, перезапрашивая её из внешнего API,
// если сохранённая устарела. Read-through кеш с посуточной инвалидацией:
// свежая строка отдаётся как есть без единого внешнего вызова; устаревшая
// или отсутствующая запускает синхронизацию. Если синхронизация не дала
// результата, возвращается устаревшая строка (лучше старые данные, чем
// никакие) либо ErrPlaceNotFound.
func (uc *PlaceUseCase) FindFresh(ctx context.Context, placeID, lookup string) (*domain.Place, error) {
	var stored *domain.Place

	if placeID != "" {
		found, err := uc.placeRepo.FindByPlaceID(ctx, placeID)
		if err != nil && err != errors.ErrPlaceNotFound {
			return nil, err
		}
		stored = found
	}

	if stored != nil && uc.isFresh(stored.UpdatedAt) {
		return stored, nil
	}

	_, synced := uc.syncUC.Sync(ctx, domain.PlaceQuery{PlaceID: placeID, Lookup: lookup})
	if synced != nil {
		return synced, nil
	}

	if stored != nil {
		uc.logger.Warn("Sync yielded nothing, returning stale record",
			zap.String("place_id", stored.PlaceID),
			zap.Time("updated_at", stored.UpdatedAt))
		return stored, nil
	}

	return nil, errors.ErrPlaceNotFound
}

// isFresh сравнивает календарные даты в настроенном часовом поясе
func (uc *PlaceUseCase) isFresh(updatedAt time.Time) bool {
	now := uc.now().In(uc.location)
	updated := updatedAt.In(uc.location)
	return updated.Year() == now.Year() && updated.YearDay() == now.YearDay()
}
