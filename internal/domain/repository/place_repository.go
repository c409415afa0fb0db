package repository

import (
	"context"

	"github.com/places-sync/internal/domain"
)

// PlaceRepository - интерфейс хранилища данных о местах
type PlaceRepository interface {
	// FindByPlaceID возвращает запись по внешнему place_id
	FindByPlaceID(ctx context.Context, placeID string) (*domain.Place, error)

	// Upsert сохраняет запись: вставка при отсутствии place_id,
	// полная перезапись изменяемых полей при наличии
	Upsert(ctx context.Context, place *domain.Place) (*domain.Place, error)

	// ListQueries возвращает запросы всех известных записей для batch-синхронизации
	ListQueries(ctx context.Context) ([]domain.PlaceQuery, error)
}
