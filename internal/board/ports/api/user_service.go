// Package api определяет сценарии, доступные транспортному слою.
package api

import (
	"context"

	"adboard/internal/board/domain/entities"
	"adboard/internal/board/domain/schema"
)

// UserService определяет операции над пользователями.
type UserService interface {
	CreateUser(ctx context.Context, payload schema.Payload) (int64, error)

	GetUser(ctx context.Context, id int64) (*entities.UserSummary, error)

	DeleteUser(ctx context.Context, id int64) error
}
