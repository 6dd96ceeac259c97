package app_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"adboard/internal/board/domain/entities"
	"adboard/internal/board/domain/schema"
	"adboard/internal/board/ports/repositories"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entities.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAdvertisementRepository struct {
	mock.Mock
}

func (m *mockAdvertisementRepository) Create(ctx context.Context, adv *entities.Advertisement) (int64, error) {
	args := m.Called(ctx, adv)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdvertisementRepository) FindByID(ctx context.Context, id int64) (*entities.Advertisement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Advertisement), args.Error(1)
}

func (m *mockAdvertisementRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAdvertisementRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}

func (m *mockAdvertisementRepository) DeleteByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) ValidateUser(ctx context.Context, payload schema.Payload) (*schema.UserInput, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.UserInput), args.Error(1)
}

func (m *mockValidator) ValidateAdvertisement(ctx context.Context, payload schema.Payload) (*schema.AdvertisementInput, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.AdvertisementInput), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockCache) Add(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) Invalidate(ctx context.Context, keys ...string) error {
	return m.Called(ctx, keys).Error(0)
}

func (m *mockCache) Close() error {
	return m.Called().Error(0)
}

// fakeUnitOfWork выполняет fn над mock-репозиториями и запоминает исход.
type fakeUnitOfWork struct {
	users *mockUserRepository
	ads   *mockAdvertisementRepository

	calls     int
	committed int
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users: new(mockUserRepository),
		ads:   new(mockAdvertisementRepository),
	}
}

func (f *fakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos repositories.Repositories) error) error {
	f.calls++
	if err := fn(ctx, f); err != nil {
		return err
	}
	f.committed++
	return nil
}

func (f *fakeUnitOfWork) Users() repositories.UserRepository { return f.users }

func (f *fakeUnitOfWork) Advertisements() repositories.AdvertisementRepository { return f.ads }
