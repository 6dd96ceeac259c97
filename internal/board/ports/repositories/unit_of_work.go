package repositories

import "context"

// Repositories дает доступ к репозиториям внутри одной единицы работы.
type Repositories interface {
	Users() UserRepository

	Advertisements() AdvertisementRepository
}

// UnitOfWork выполняет fn в отдельной транзакции: фиксирует ее, если fn
// вернула nil, и откатывает при выходе из области в остальных случаях.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
