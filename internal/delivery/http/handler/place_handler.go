package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/places-sync/internal/domain"
	"github.com/places-sync/internal/pkg/utils"
	"github.com/places-sync/internal/pkg/validator"
	"github.com/places-sync/internal/usecase"
	"github.com/places-sync/internal/usecase/dto"
)

// PlaceHandler - обработчик для чтения и синхронизации мест
type PlaceHandler struct {
	placeUC *usecase.PlaceUseCase
	syncUC  *usecase.SyncUseCase
	logger  *zap.Logger
}

// NewPlaceHandler - создание нового PlaceHandler
func NewPlaceHandler(placeUC *usecase.PlaceUseCase, syncUC *usecase.SyncUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
		syncUC:  syncUC,
		logger:  logger,
	}
}

// GetPlace godoc
// @Summary Получение места с проверкой свежести
// @Description Возвращает сохранённое место. Если запись не обновлялась сегодня, сначала выполняется ресинхронизация из Google Places API.
// @Tags Places
// @Accept json
// @Produce json
// @Param placeId path string true "Google Place ID"
// @Param lookup query string false "Поисковый текст или телефон для повторного поиска"
// @Success 200 {object} utils.SuccessResponse{data=dto.PlaceResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/places/{placeId} [get]
func (h *PlaceHandler) GetPlace(c *fiber.Ctx) error {
	req := dto.GetPlaceRequest{
		PlaceID: c.Params("placeId"),
		Lookup:  c.Query("lookup"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	place, err := h.placeUC.FindFresh(c.Context(), req.PlaceID, req.Lookup)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.FromPlace(place), nil)
}

// SyncPlace godoc
// @Summary Синхронизация одного места
// @Description Выполняет поиск и загрузку деталей места из Google Places API и сохраняет результат. Сбои обогащения не считаются ошибкой: ответ всегда proceed=true.
// @Tags Places
// @Accept json
// @Produce json
// @Param request body dto.SyncPlaceRequest true "place_id или lookup"
// @Success 200 {object} utils.SuccessResponse{data=dto.SyncPlaceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/places/sync [post]
func (h *PlaceHandler) SyncPlace(c *fiber.Ctx) error {
	var req dto.SyncPlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	proceed, place := h.syncUC.Sync(c.Context(), domain.PlaceQuery{
		PlaceID: req.PlaceID,
		Lookup:  req.Lookup,
	})

	return utils.SendSuccess(c, dto.SyncPlaceResponse{
		Proceed: proceed,
		Place:   dto.FromPlace(place),
	}, nil)
}
