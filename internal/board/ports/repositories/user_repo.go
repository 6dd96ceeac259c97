// Package repositories определяет порты хранилища.
package repositories

import (
	"context"

	"adboard/internal/board/domain/entities"
)

// UserRepository определяет операции хранения пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (int64, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	Delete(ctx context.Context, id int64) error
}
