package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"adboard/pkg/logger"
)

const (
	logRequestStarted   = "request started"
	logRequestCompleted = "request completed"
	logRequestFailed    = "request failed"
	logRenderFailed     = "failed to render error response"
)

// NewLoggerMiddleware логирует запросы. Ошибку цепочки он сразу передает
// обработчику ошибок приложения, чтобы в лог попал итоговый статус.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := ctx.Context()
		start := time.Now()

		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)

		log.Debug(requestCtx, logRequestStarted)

		chainErr := ctx.Next()
		if chainErr != nil {
			if err := ctx.App().ErrorHandler(ctx, chainErr); err != nil {
				log.Error(requestCtx, logRenderFailed, zap.Error(err))
				_ = ctx.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}

		switch status := ctx.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			log.Error(requestCtx, logRequestFailed, append(fields, zap.Error(chainErr))...)
		case chainErr != nil:
			log.Info(requestCtx, logRequestFailed, append(fields, zap.Error(chainErr))...)
		default:
			log.Info(requestCtx, logRequestCompleted, fields...)
		}

		return nil
	}
}
