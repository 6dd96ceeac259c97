package api

import (
	"context"

	"adboard/internal/board/domain/entities"
	"adboard/internal/board/domain/schema"
)

// AdvertisementService определяет операции над объявлениями.
type AdvertisementService interface {
	CreateAdvertisement(ctx context.Context, ownerID int64, payload schema.Payload) (int64, error)

	GetAdvertisement(ctx context.Context, id int64) (*entities.Advertisement, error)

	DeleteAdvertisement(ctx context.Context, id int64) error
}
