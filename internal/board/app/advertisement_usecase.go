package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"adboard/internal/board/domain/entities"
	"adboard/internal/board/domain/failure"
	"adboard/internal/board/domain/schema"
	"adboard/internal/board/ports/api"
	"adboard/internal/board/ports/repositories"
	"adboard/internal/board/ports/services"
	"adboard/pkg/logger"
)

const (
	methodCreateAdvertisement = "CreateAdvertisement"
	methodGetAdvertisement    = "GetAdvertisement"
	methodDeleteAdvertisement = "DeleteAdvertisement"

	msgAdvertisementCreated     = "advertisement created"
	msgAdvertisementRejected    = "advertisement rejected by store"
	msgAdvertisementServedCache = "advertisement served from cache"
	msgAdvertisementRetrieved   = "advertisement retrieved"
	msgAdvertisementDeleted     = "advertisement deleted"

	errCtxCreatingAdvertisement = "creating advertisement"
	errCtxFetchingAdvertisement = "fetching advertisement"
	errCtxDeletingAdvertisement = "deleting advertisement"
)

// AdvertisementUseCaseImpl реализует api.AdvertisementService.
type AdvertisementUseCaseImpl struct {
	uow       repositories.UnitOfWork
	validator services.SchemaValidator
	cache     readCache
}

// NewAdvertisementUseCase создает сценарии объявлений.
func NewAdvertisementUseCase(
	uow repositories.UnitOfWork,
	validator services.SchemaValidator,
	cache services.Cache,
) api.AdvertisementService {
	return &AdvertisementUseCaseImpl{
		uow:       uow,
		validator: validator,
		cache:     readCache{cache: cache},
	}
}

// CreateAdvertisement создает объявление пользователя ownerID.
// Владелец ищется до проверки тела: для несуществующего пользователя
// ответ 404 даже при некорректном теле.
func (a *AdvertisementUseCaseImpl) CreateAdvertisement(
	ctx context.Context,
	ownerID int64,
	payload schema.Payload,
) (int64, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateAdvertisement), zap.Int64("owner_id", ownerID))

	var id int64
	err := a.uow.Do(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		if _, err := findUser(ctx, repos, ownerID); err != nil {
			return err
		}

		input, err := a.validator.ValidateAdvertisement(ctx, payload)
		if err != nil {
			return err
		}

		id, err = repos.Advertisements().Create(ctx, &entities.Advertisement{
			Headline:    input.Headline,
			Description: input.Description,
			OwnerID:     ownerID,
		})
		switch {
		case errors.Is(err, entities.ErrAdvertisementRejected):
			log.Warn(ctx, msgAdvertisementRejected, zap.Error(err))
			return failure.Persistence(MsgSomethingWrong, err)
		case err != nil:
			return fmt.Errorf("%s: %w", errCtxCreatingAdvertisement, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	a.cache.drop(ctx, userKey(ownerID))

	log.Info(ctx, msgAdvertisementCreated, zap.Int64("adv_id", id))
	return id, nil
}

// GetAdvertisement возвращает объявление по идентификатору.
func (a *AdvertisementUseCaseImpl) GetAdvertisement(ctx context.Context, id int64) (*entities.Advertisement, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetAdvertisement), zap.Int64("adv_id", id))

	var adv entities.Advertisement
	if a.cache.get(ctx, advKey(id), &adv) {
		log.Debug(ctx, msgAdvertisementServedCache)
		return &adv, nil
	}

	err := a.uow.Do(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		found, err := findAdvertisement(ctx, repos, id)
		if err != nil {
			return err
		}
		adv = *found
		return nil
	})
	if err != nil {
		return nil, err
	}

	a.cache.put(ctx, advKey(id), adv)
	log.Debug(ctx, msgAdvertisementRetrieved)
	return &adv, nil
}

// DeleteAdvertisement удаляет объявление. Владелец не проверяется.
func (a *AdvertisementUseCaseImpl) DeleteAdvertisement(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteAdvertisement), zap.Int64("adv_id", id))

	var ownerID int64
	err := a.uow.Do(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		adv, err := findAdvertisement(ctx, repos, id)
		if err != nil {
			return err
		}
		ownerID = adv.OwnerID

		err = repos.Advertisements().Delete(ctx, id)
		switch {
		case errors.Is(err, entities.ErrAdvertisementNotFound):
			return failure.NotFound(MsgAdvertisementNotFound, err)
		case err != nil:
			return fmt.Errorf("%s: %w", errCtxDeletingAdvertisement, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.cache.drop(ctx, advKey(id), userKey(ownerID))

	log.Info(ctx, msgAdvertisementDeleted, zap.Int64("owner_id", ownerID))
	return nil
}

func findAdvertisement(ctx context.Context, repos repositories.Repositories, id int64) (*entities.Advertisement, error) {
	adv, err := repos.Advertisements().FindByID(ctx, id)
	switch {
	case errors.Is(err, entities.ErrAdvertisementNotFound):
		return nil, failure.NotFound(MsgAdvertisementNotFound, err)
	case err != nil:
		return nil, fmt.Errorf("%s: %w", errCtxFetchingAdvertisement, err)
	}
	return adv, nil
}
