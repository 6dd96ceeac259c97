package postgres

import (
	"adboard/internal/board/ports/repositories"
)

// RepositoryFactory собирает репозитории поверх одного Querier.
type RepositoryFactory struct {
	userRepo repositories.UserRepository
	advRepo  repositories.AdvertisementRepository
}

// NewRepositoryFactory создает репозитории, разделяющие db.
func NewRepositoryFactory(db Querier) *RepositoryFactory {
	return &RepositoryFactory{
		userRepo: NewUserRepository(db),
		advRepo:  NewAdvertisementRepository(db),
	}
}

// Users возвращает репозиторий пользователей.
func (f *RepositoryFactory) Users() repositories.UserRepository {
	return f.userRepo
}

// Advertisements возвращает репозиторий объявлений.
func (f *RepositoryFactory) Advertisements() repositories.AdvertisementRepository {
	return f.advRepo
}
