package cache

import (
	"context"
	"time"

	"adboard/internal/board/ports/services"
)

// Noop - кэш, который ничего не хранит. Используется, когда Redis выключен.
type Noop struct{}

// NewNoop создает пустой кэш.
func NewNoop() services.Cache {
	return Noop{}
}

func (Noop) Get(context.Context, string) (string, error) { return "", nil }

func (Noop) Add(context.Context, string, string, time.Duration) (bool, error) { return false, nil }

func (Noop) Invalidate(context.Context, ...string) error { return nil }

func (Noop) Close() error { return nil }
