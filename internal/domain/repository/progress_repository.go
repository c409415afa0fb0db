package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/places-sync/internal/domain"
)

// ProgressRepository - хранилище прогресса batch-задач.
// Прогресс живёт ограниченное время (TTL задаётся реализацией),
// чтобы api мог отдавать состояние задачи по job_id.
type ProgressRepository interface {
	// SetProgress сохраняет текущий прогресс задачи
	SetProgress(ctx context.Context, progress domain.SyncProgress) error

	// GetProgress возвращает прогресс задачи или nil, если задача неизвестна
	GetProgress(ctx context.Context, jobID uuid.UUID) (*domain.SyncProgress, error)
}
