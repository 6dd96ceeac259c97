package services

import (
	"context"

	"adboard/internal/board/domain/schema"
)

// SchemaValidator проверяет тела запросов создания.
// При нарушениях возвращает *failure.Error вида KindValidation.
type SchemaValidator interface {
	ValidateUser(ctx context.Context, payload schema.Payload) (*schema.UserInput, error)

	ValidateAdvertisement(ctx context.Context, payload schema.Payload) (*schema.AdvertisementInput, error)
}
