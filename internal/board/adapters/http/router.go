// Package http содержит HTTP-интерфейс доски объявлений.
package http

import (
	"github.com/gofiber/fiber/v3"

	"adboard/internal/board/adapters/http/handlers"
	"adboard/internal/board/adapters/http/middleware"
	"adboard/internal/board/config"
	"adboard/internal/board/ports/api"
)

const appName = "board"

// NewApp создает fiber-приложение с обработчиком ошибок сервиса
// и ограничением маршрутов <digits>.
func NewApp(cfg *config.HTTPConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: ErrorHandler,
	})
	app.RegisterCustomConstraint(digitsConstraint{})
	return app
}

// SetupRouter настраивает маршрутизацию. Неизвестные пути отвечают 404
// через ErrorHandler, известные пути с чужим методом - 405.
func SetupRouter(app *fiber.App, userService api.UserService, advService api.AdvertisementService) {
	userHandler := handlers.NewUserHandler(userService)
	advHandler := handlers.NewAdvertisementHandler(advService)

	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	userRoutes := app.Group("/user")
	userRoutes.Post("/", userHandler.Create)
	userRoutes.Get("/:id<digits>", userHandler.Get)
	userRoutes.Delete("/:id<digits>", userHandler.Delete)
	userRoutes.Post("/:id<digits>/adv/", advHandler.Create)

	advRoutes := app.Group("/adv")
	advRoutes.Get("/:id<digits>", advHandler.Get)
	advRoutes.Delete("/:id<digits>", advHandler.Delete)
}
