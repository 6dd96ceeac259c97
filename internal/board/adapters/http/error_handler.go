package http

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"adboard/internal/board/domain/failure"
	"adboard/pkg/logger"
)

const (
	statusError = "error"

	msgRouteNotFound       = "Route not found"
	msgInternalServerError = "Internal Server Error"

	logUnhandledError = "unhandled error"
)

// ErrorResponse - тело ответа с ошибкой. Message - строка либо список нарушений.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message any    `json:"message"`
}

// ErrorHandler переводит ошибки обработчиков в ответы
// {"status": "error", "message": ...}.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	status, message := translate(ctx, err)
	return ctx.Status(status).JSON(ErrorResponse{Status: statusError, Message: message})
}

func translate(ctx fiber.Ctx, err error) (int, any) {
	if fe, ok := failure.As(err); ok {
		return statusFor(fe.Kind), fe.Payload()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		if fiberErr.Code == fiber.StatusNotFound {
			return fiber.StatusNotFound, msgRouteNotFound
		}
		return fiberErr.Code, fiberErr.Message
	}

	requestCtx := ctx.Context()
	logger.Log(requestCtx).Error(requestCtx, logUnhandledError,
		zap.String("path", ctx.Path()),
		zap.String("method", ctx.Method()),
		zap.Error(err))
	return fiber.StatusInternalServerError, msgInternalServerError
}

func statusFor(kind failure.Kind) int {
	switch kind {
	case failure.KindNotFound:
		return fiber.StatusNotFound
	case failure.KindValidation, failure.KindConflict, failure.KindPersistence:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
