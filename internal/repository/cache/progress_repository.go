package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/domain/repository"
)

const progressKeyPrefix = "progress:sync:"

type progressRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewProgressRepository создает хранилище прогресса batch-задач поверх Redis.
// Записи живут ttl, чтобы завершённые задачи не копились бесконечно.
func NewProgressRepository(client *redis.Client, ttl time.Duration, logger *zap.Logger) repository.ProgressRepository {
	return &progressRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func progressKey(jobID uuid.UUID) string {
	return progressKeyPrefix + jobID.String()
}

// SetProgress сохраняет текущий прогресс задачи
func (r *progressRepository) SetProgress(ctx context.Context, progress domain.SyncProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := r.client.Set(ctx, progressKey(progress.JobID), data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to store sync progress",
			zap.String("job_id", progress.JobID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to store progress: %w", err)
	}

	return nil
}

// GetProgress возвращает прогресс задачи или nil, если задача неизвестна
func (r *progressRepository) GetProgress(ctx context.Context, jobID uuid.UUID) (*domain.SyncProgress, error) {
	data, err := r.client.Get(ctx, progressKey(jobID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		r.logger.Error("Failed to load sync progress",
			zap.String("job_id", jobID.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	var progress domain.SyncProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	return &progress, nil
}
