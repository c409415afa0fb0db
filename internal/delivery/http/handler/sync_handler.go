package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/domain/repository"
	"github.com/places-sync/internal/pkg/errors"
	"github.com/places-sync/internal/pkg/utils"
	"github.com/places-sync/internal/usecase/dto"
)

// SyncHandler - обработчик batch-синхронизации.
// Задача публикуется в Redis Stream и выполняется воркером;
// прогресс доступен по job_id.
type SyncHandler struct {
	streamRepo   repository.StreamRepository
	progressRepo repository.ProgressRepository
	logger       *zap.Logger
}

// NewSyncHandler - создание нового SyncHandler
func NewSyncHandler(
	streamRepo repository.StreamRepository,
	progressRepo repository.ProgressRepository,
	logger *zap.Logger,
) *SyncHandler {
	return &SyncHandler{
		streamRepo:   streamRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// SyncAll godoc
// @Summary Запуск полной ресинхронизации
// @Description Ставит в очередь задачу синхронизации всех сохранённых мест. Возвращает job_id для отслеживания прогресса.
// @Tags Sync
// @Accept json
// @Produce json
// @Success 202 {object} utils.SuccessResponse{data=dto.SyncAllResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/sync-all [post]
func (h *SyncHandler) SyncAll(c *fiber.Ctx) error {
	job := domain.SyncJob{
		JobID:       uuid.New(),
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.streamRepo.PublishToStream(c.Context(), domain.StreamPlacesSync, job); err != nil {
		h.logger.Error("Failed to enqueue sync job", zap.Error(err))
		return utils.SendError(c, errors.ErrQueueError)
	}

	h.logger.Info("Sync job enqueued", zap.String("job_id", job.JobID.String()))

	c.Status(fiber.StatusAccepted)
	return utils.SendSuccess(c, dto.SyncAllResponse{
		Success: true,
		JobID:   job.JobID,
	}, nil)
}

// GetProgress godoc
// @Summary Прогресс задачи ресинхронизации
// @Description Возвращает текущее состояние batch-задачи по её job_id
// @Tags Sync
// @Accept json
// @Produce json
// @Param jobId path string true "ID задачи (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.SyncProgressResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/places/sync-all/{jobId} [get]
func (h *SyncHandler) GetProgress(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("jobId"))
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	progress, err := h.progressRepo.GetProgress(c.Context(), jobID)
	if err != nil {
		return utils.SendError(c, err)
	}
	if progress == nil {
		return utils.SendError(c, errors.ErrJobNotFound)
	}

	return utils.SendSuccess(c, dto.SyncProgressResponse{
		JobID:        progress.JobID,
		Step:         progress.Step,
		Total:        progress.Total,
		Fraction:     progress.Fraction,
		CurrentPlace: progress.CurrentPlace,
		Failed:       progress.Failed,
		Done:         progress.Done,
	}, nil)
}
