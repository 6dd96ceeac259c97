package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"adboard/pkg/logger"
)

const errPanicRecovered = "panic recovered"

// NewRecoveryMiddleware превращает панику обработчика в ошибку,
// которую обработчик ошибок отдает как 500.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := ctx.Context()

		defer func() {
			if r := recover(); r != nil {
				logger.Log(requestCtx).Error(requestCtx, "server panic",
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String("stack", string(debug.Stack())),
				)
				err = fmt.Errorf("%s: %v", errPanicRecovered, r)
			}
		}()

		return ctx.Next()
	}
}
