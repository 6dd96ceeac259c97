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
	LogHandlerCreateUser = "handling create user request"
	LogHandlerGetUser    = "handling get user request"
	LogHandlerDeleteUser = "handling delete user request"

	errSendResponse = "error sending response"
)

// UserHandler обрабатывает запросы к пользователям.
type UserHandler struct {
	users api.UserService
}

// NewUserHandler создает обработчик пользователей.
func NewUserHandler(users api.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create обрабатывает POST /user/.
func (h *UserHandler) Create(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	logger.Log(requestCtx).With(zap.String("handler", "UserHandler.Create")).Debug(requestCtx, LogHandlerCreateUser)

	id, err := h.users.CreateUser(requestCtx, bindPayload(ctx))
	if err != nil {
		return err
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(CreatedResponse{Status: StatusCreated, ID: id}); err != nil {
		return fmt.Errorf("%s: %w", errSendResponse, err)
	}
	return nil
}

// Get обрабатывает GET /user/{id}.
func (h *UserHandler) Get(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	id, err := pathID(ctx, app.MsgUserNotFound)
	if err != nil {
		return err
	}
	logger.Log(requestCtx).With(zap.String("handler", "UserHandler.Get"), zap.Int64("user_id", id)).
		Debug(requestCtx, LogHandlerGetUser)

	summary, err := h.users.GetUser(requestCtx, id)
	if err != nil {
		return err
	}

	if err := ctx.JSON(summary); err != nil {
		return fmt.Errorf("%s: %w", errSendResponse, err)
	}
	return nil
}

// Delete обрабатывает DELETE /user/{id}.
func (h *UserHandler) Delete(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	id, err := pathID(ctx, app.MsgUserNotFound)
	if err != nil {
		return err
	}
	logger.Log(requestCtx).With(zap.String("handler", "UserHandler.Delete"), zap.Int64("user_id", id)).
		Debug(requestCtx, LogHandlerDeleteUser)

	if err := h.users.DeleteUser(requestCtx, id); err != nil {
		return err
	}

	if err := ctx.JSON(UserDeletedResponse{UserID: id, Status: StatusDeleted}); err != nil {
		return fmt.Errorf("%s: %w", errSendResponse, err)
	}
	return nil
}
