package usecase

import (
	"context"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/domain/repository"
	"go.uber.org/zap"
)

// ProgressFunc - типизированный callback прогресса batch-синхронизации
type ProgressFunc func(progress domain.SyncProgress)

// BatchSyncUseCase - полная ресинхронизация всех известных записей.
// Записи обрабатываются строго последовательно; сбой одной записи логируется,
// попадает в итог и не прерывает прогон. Отмена проверяется между записями
// через контекст.
type BatchSyncUseCase struct {
	placeRepo repository.PlaceRepository
	syncUC    *SyncUseCase
	logger    *zap.Logger
}

// NewBatchSyncUseCase создает новый BatchSyncUseCase
func NewBatchSyncUseCase(
	placeRepo repository.PlaceRepository,
	syncUC *SyncUseCase,
	logger *zap.Logger,
) *BatchSyncUseCase {
	return &BatchSyncUseCase{
		placeRepo: placeRepo,
		syncUC:    syncUC,
		logger:    logger,
	}
}

// SyncAll перечисляет все записи и прогоняет каждую через оркестратор.
// onProgress вызывается после каждой записи с дробным прогрессом и списком
// сбоев; итоговая сводка возвращается вызывающей стороне - частичные сбои
// не проглатываются.
func (uc *BatchSyncUseCase) SyncAll(ctx context.Context, onProgress ProgressFunc) (*domain.SyncSummary, error) {
	queries, err := uc.placeRepo.ListQueries(ctx)
	if err != nil {
		return nil, err
	}

	total := len(queries)
	summary := &domain.SyncSummary{Total: total}

	uc.logger.Info("Starting full resync", zap.Int("total", total))

	for i, query := range queries {
		select {
		case <-ctx.Done():
			uc.logger.Warn("Full resync cancelled",
				zap.Int("step", i),
				zap.Int("total", total))
			return summary, ctx.Err()
		default:
		}

		_, place := uc.syncUC.Sync(ctx, query)
		if place != nil {
			summary.Synced++
		} else {
			failed := query.PlaceID
			if failed == "" {
				failed = query.Lookup
			}
			summary.Failed = append(summary.Failed, failed)
			uc.logger.Warn("Place sync produced no result",
				zap.String("place_id", query.PlaceID),
				zap.String("lookup", query.Lookup))
		}

		if onProgress != nil {
			onProgress(domain.SyncProgress{
				Step:         i + 1,
				Total:        total,
				Fraction:     float64(i+1) / float64(total),
				CurrentPlace: query.PlaceID,
				Failed:       summary.Failed,
			})
		}
	}

	uc.logger.Info("Full resync finished",
		zap.Int("total", summary.Total),
		zap.Int("synced", summary.Synced),
		zap.Int("failed", len(summary.Failed)))

	return summary, nil
}
