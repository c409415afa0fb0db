package places

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/domain/repository"
	"github.com/places-sync/internal/usecase"
	"github.com/places-sync/internal/worker"
)

const (
	maxBatchSize    = 5                      // максимум задач за одно чтение
	emptyQueueSleep = 100 * time.Millisecond // пауза если очередь пуста
)

// BatchSyncer выполняет полную синхронизацию всех сохранённых мест
type BatchSyncer interface {
	SyncAll(ctx context.Context, onProgress usecase.ProgressFunc) (*domain.SyncSummary, error)
}

// SyncWorker обрабатывает задачи полной ресинхронизации из стрима.
// Прогресс каждой задачи сохраняется в ProgressRepository, чтобы api
// мог отдавать его по job_id.
type SyncWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	progressRepo repository.ProgressRepository
	batchSyncer  BatchSyncer
	consumerName string
}

// NewSyncWorker создает новый SyncWorker
func NewSyncWorker(
	streamRepo repository.StreamRepository,
	progressRepo repository.ProgressRepository,
	batchSyncer BatchSyncer,
	consumerGroup string,
	logger *zap.Logger,
) *SyncWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &SyncWorker{
		BaseWorker:   worker.NewBaseWorker("places-sync", consumerGroup, logger),
		streamRepo:   streamRepo,
		progressRepo: progressRepo,
		batchSyncer:  batchSyncer,
		consumerName: consumerName,
	}
}

// Start запускает воркер
func (w *SyncWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting SyncWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	// Создаем consumer group
	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPlacesSync, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	// Основной цикл обработки
	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second) // пауза при ошибке
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// processBatch читает задачи из стрима и выполняет их последовательно.
// Возвращает количество прочитанных сообщений.
func (w *SyncWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamPlacesSync,
		w.ConsumerGroup(),
		w.consumerName,
		maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil // очередь пуста
	}

	for _, msg := range messages {
		job, err := w.parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK битое сообщение чтобы не застревало
			_ = w.streamRepo.AckMessage(ctx, domain.StreamPlacesSync, w.ConsumerGroup(), msg.ID)
			continue
		}

		if err := w.runJob(ctx, job); err != nil {
			logger.Error("Sync job failed",
				zap.String("job_id", job.JobID.String()),
				zap.Error(err))
			// Не ACK-аем: задача будет переобработана
			continue
		}

		if err := w.streamRepo.AckMessage(ctx, domain.StreamPlacesSync, w.ConsumerGroup(), msg.ID); err != nil {
			logger.Error("Failed to ack message",
				zap.String("message_id", msg.ID),
				zap.Error(err))
		}
	}

	return len(messages), nil
}

// runJob выполняет полную синхронизацию, публикуя прогресс по ходу работы
func (w *SyncWorker) runJob(ctx context.Context, job *domain.SyncJob) error {
	logger := w.Logger()
	logger.Info("Starting sync job", zap.String("job_id", job.JobID.String()))

	onProgress := func(progress domain.SyncProgress) {
		progress.JobID = job.JobID
		if err := w.progressRepo.SetProgress(ctx, progress); err != nil {
			logger.Warn("Failed to store progress",
				zap.String("job_id", job.JobID.String()),
				zap.Error(err))
		}
	}

	summary, err := w.batchSyncer.SyncAll(ctx, onProgress)
	if err != nil {
		return fmt.Errorf("sync all failed: %w", err)
	}

	// Финальная запись: задача завершена
	final := domain.SyncProgress{
		JobID:    job.JobID,
		Step:     summary.Total,
		Total:    summary.Total,
		Fraction: 1,
		Failed:   summary.Failed,
		Done:     true,
	}
	if err := w.progressRepo.SetProgress(ctx, final); err != nil {
		logger.Warn("Failed to store final progress",
			zap.String("job_id", job.JobID.String()),
			zap.Error(err))
	}

	logger.Info("Sync job completed",
		zap.String("job_id", job.JobID.String()),
		zap.Int("total", summary.Total),
		zap.Int("synced", summary.Synced),
		zap.Int("failed", len(summary.Failed)))

	return nil
}

// parseMessage парсит сообщение из стрима в SyncJob
func (w *SyncWorker) parseMessage(msg domain.StreamMessage) (*domain.SyncJob, error) {
	data, ok := msg.Data["data"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var job domain.SyncJob
	if err := json.Unmarshal([]byte(data), &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}

	return &job, nil
}
