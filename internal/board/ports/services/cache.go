package services

import (
	"context"
	"time"
)

// Cache - кэш чтения со строковыми значениями.
//
// Get возвращает пустую строку без ошибки, если значения нет.
// Add записывает значение, только если ключ свободен, и сообщает, записано ли оно.
// Invalidate сбрасывает ключи и на время удержания не дает Add записать их заново,
// так что чтение, начатое до записи в хранилище, не вернет в кэш старое значение.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)

	Add(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)

	Invalidate(ctx context.Context, keys ...string) error

	Close() error
}
