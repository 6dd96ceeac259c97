package repositories

import (
	"context"

	"adboard/internal/board/domain/entities"
)

// AdvertisementRepository определяет операции хранения объявлений.
type AdvertisementRepository interface {
	Create(ctx context.Context, adv *entities.Advertisement) (int64, error)

	FindByID(ctx context.Context, id int64) (*entities.Advertisement, error)

	Delete(ctx context.Context, id int64) error

	CountByOwner(ctx context.Context, ownerID int64) (int, error)

	DeleteByOwner(ctx context.Context, ownerID int64) ([]int64, error)
}
