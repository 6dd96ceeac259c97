// Package app содержит сценарии доски объявлений: каждый выполняется
// в собственной единице работы.
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

// Сообщения доменных ошибок, которые видит клиент.
const (
	MsgUserNotFound          = "User not found"
	MsgUserAlreadyExists     = "User already exists"
	MsgAdvertisementNotFound = "Advertisement not found"
	MsgSomethingWrong        = "Something wrong happened"
)

const (
	methodCreateUser = "CreateUser"
	methodGetUser    = "GetUser"
	methodDeleteUser = "DeleteUser"

	msgUserCreated     = "user created"
	msgUserServedCache = "user served from cache"
	msgUserRetrieved   = "user retrieved"
	msgUserDeleted     = "user deleted"

	errCtxCreatingUser     = "creating user"
	errCtxFetchingUser     = "fetching user"
	errCtxCountingAds      = "counting user advertisements"
	errCtxDeletingUser     = "deleting user"
	errCtxDeletingOwnedAds = "deleting user advertisements"
)

// UserUseCaseImpl реализует api.UserService.
type UserUseCaseImpl struct {
	uow       repositories.UnitOfWork
	validator services.SchemaValidator
	cache     readCache
}

// NewUserUseCase создает сценарии пользователя.
func NewUserUseCase(
	uow repositories.UnitOfWork,
	validator services.SchemaValidator,
	cache services.Cache,
) api.UserService {
	return &UserUseCaseImpl{
		uow:       uow,
		validator: validator,
		cache:     readCache{cache: cache},
	}
}

// CreateUser проверяет тело, хэширует пароль и сохраняет пользователя.
func (u *UserUseCaseImpl) CreateUser(ctx context.Context, payload schema.Payload) (int64, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateUser))

	input, err := u.validator.ValidateUser(ctx, payload)
	if err != nil {
		return 0, err
	}

	var id int64
	err = u.uow.Do(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		var err error
		id, err = repos.Users().Create(ctx, &entities.User{
			Username:     input.Username,
			PasswordHash: input.PasswordHash,
		})
		switch {
		case errors.Is(err, entities.ErrUsernameTaken):
			return failure.Conflict(MsgUserAlreadyExists, err)
		case err != nil:
			return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info(ctx, msgUserCreated, zap.Int64("user_id", id))
	return id, nil
}

// GetUser возвращает имя пользователя и число его объявлений.
func (u *UserUseCaseImpl) GetUser(ctx context.Context, id int64) (*entities.UserSummary, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUser), zap.Int64("user_id", id))

	var summary entities.UserSummary
	if u.cache.get(ctx, userKey(id), &summary) {
		log.Debug(ctx, msgUserServedCache)
		return &summary, nil
	}

	err := u.uow.Do(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		user, err := findUser(ctx, repos, id)
		if err != nil {
			return err
		}

		count, err := repos.Advertisements().CountByOwner(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxCountingAds, err)
		}

		summary = entities.UserSummary{Username: user.Username, Advertisements: count}
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.cache.put(ctx, userKey(id), summary)
	log.Debug(ctx, msgUserRetrieved)
	return &summary, nil
}

// DeleteUser удаляет пользователя вместе с его объявлениями.
func (u *UserUseCaseImpl) DeleteUser(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteUser), zap.Int64("user_id", id))

	var advIDs []int64
	err := u.uow.Do(ctx, func(ctx context.Context, repos repositories.Repositories) error {
		if _, err := findUser(ctx, repos, id); err != nil {
			return err
		}

		var err error
		advIDs, err = repos.Advertisements().DeleteByOwner(ctx, id)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtxDeletingOwnedAds, err)
		}

		err = repos.Users().Delete(ctx, id)
		switch {
		case errors.Is(err, entities.ErrUserNotFound):
			return failure.NotFound(MsgUserNotFound, err)
		case err != nil:
			return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(advIDs)+1)
	keys = append(keys, userKey(id))
	for _, advID := range advIDs {
		keys = append(keys, advKey(advID))
	}
	u.cache.drop(ctx, keys...)

	log.Info(ctx, msgUserDeleted, zap.Int("advertisements_deleted", len(advIDs)))
	return nil
}

func findUser(ctx context.Context, repos repositories.Repositories, id int64) (*entities.User, error) {
	user, err := repos.Users().FindByID(ctx, id)
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return nil, failure.NotFound(MsgUserNotFound, err)
	case err != nil:
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}
	return user, nil
}
