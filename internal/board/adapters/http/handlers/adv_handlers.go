package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"adboard/internal/board/app"
	"adboard/internal/board/ports/api"
	"adboard/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerCreateAdvertisement = "handling create advertisement request"
	LogHandlerGetAdvertisement    = "handling get advertisement request"
	LogHandlerDeleteAdvertisement = "handling delete advertisement request"
)

// AdvertisementHandler обрабатывает запросы к объявлениям.
type AdvertisementHandler struct {
	ads api.AdvertisementService
}

// NewAdvertisementHandler создает обработчик объявлений.
func NewAdvertisementHandler(ads api.AdvertisementService) *AdvertisementHandler {
	return &AdvertisementHandler{ads: ads}
}

// Create обрабатывает POST /user/{id}/adv/.
func (h *AdvertisementHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	ownerID, err := pathID(ctx, app.MsgUserNotFound)
	if err != nil {
		return err
	}
	logger.Log(requestCtx).With(zap.String("handler", "AdvertisementHandler.Create"), zap.Int64("owner_id", ownerID)).
		Debug(requestCtx, LogHandlerCreateAdvertisement)

	id, err := h.ads.CreateAdvertisement(requestCtx, ownerID, bindPayload(ctx))
	if err != nil {
		return err
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(CreatedResponse{Status: StatusCreated, ID: id}); err != nil {
		return fmt.Errorf("%s: %w", errSendResponse, err)
	}
	return nil
}

// Get обрабатывает GET /adv/{id}.
func (h *AdvertisementHandler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	id, err := pathID(ctx, app.MsgAdvertisementNotFound)
	if err != nil {
		return err
	}
	logger.Log(requestCtx).With(zap.String("handler", "AdvertisementHandler.Get"), zap.Int64("adv_id", id)).
		Debug(requestCtx, LogHandlerGetAdvertisement)

	adv, err := h.ads.GetAdvertisement(requestCtx, id)
	if err != nil {
		return err
	}

	resp := AdvertisementResponse{
		Headline:    adv.Headline,
		Description: adv.Description,
		CreatedAt:   formatTime(adv.CreatedAt),
		OwnerID:     adv.OwnerID,
	}
	if err := ctx.JSON(resp); err != nil {
		return fmt.Errorf("%s: %w", errSendResponse, err)
	}
	return nil
}

// Delete обрабатывает DELETE /adv/{id}.
func (h *AdvertisementHandler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	id, err := pathID(ctx, app.MsgAdvertisementNotFound)
	if err != nil {
		return err
	}
	logger.Log(requestCtx).With(zap.String("handler", "AdvertisementHandler.Delete"), zap.Int64("adv_id", id)).
		Debug(requestCtx, LogHandlerDeleteAdvertisement)

	if err := h.ads.DeleteAdvertisement(requestCtx, id); err != nil {
		return err
	}

	if err := ctx.JSON(AdvertisementDeletedResponse{AdvID: id, Status: StatusDeleted}); err != nil {
		return fmt.Errorf("%s: %w", errSendResponse, err)
	}
	return nil
}
