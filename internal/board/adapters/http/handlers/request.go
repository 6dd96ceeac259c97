// Package handlers содержит HTTP-обработчики пользователей и объявлений.
package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"adboard/internal/board/domain/failure"
	"adboard/internal/board/domain/schema"
	"adboard/pkg/logger"
)

const (
	paramID = "id"

	logBodyNotObject = "request body is not a JSON object"
	logIDOutOfRange  = "path id out of range"
)

// bindPayload разбирает тело как JSON-объект. Если это не объект,
// возвращается nil: валидатор сообщит об этом нарушением __root__.
func bindPayload(ctx fiber.Ctx) schema.Payload {
	var payload schema.Payload
	if err := ctx.Bind().JSON(&payload); err != nil {
		logger.Log(ctx.Context()).Debug(ctx.Context(), logBodyNotObject, zap.Error(err))
		return nil
	}
	return payload
}

// pathID возвращает числовой идентификатор из пути. Маршруты пропускают
// только цифры, поэтому ошибка разбора означает выход за int64: такой
// записи быть не может, и клиент получает 404 с сообщением notFound.
func pathID(ctx fiber.Ctx, notFound string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(paramID), 10, 64)
	if err != nil {
		logger.Log(ctx.Context()).Debug(ctx.Context(), logIDOutOfRange,
			zap.String("param", ctx.Params(paramID)), zap.Error(err))
		return 0, failure.NotFound(notFound, err)
	}
	return id, nil
}
