// Package shutdown реализует корректное завершение процесса по SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"adboard/pkg/logger"
)

const (
	LogSignalReceived = "shutdown signal received"
	LogHooksDone      = "shutdown hooks completed"
	LogHooksTimeout   = "shutdown timeout exceeded"
	LogHookFailed     = "shutdown hook failed"
)

// Hook освобождает один ресурс при завершении.
type Hook func(context.Context) error

// ErrServeFailed означает, что сервер завершился с ошибкой до сигнала остановки.
var ErrServeFailed = errors.New("server stopped unexpectedly")

// Serve запускает serve в отдельной горутине и ждет, как Wait. Ошибка serve
// тоже запускает hooks и возвращается обернутой в ErrServeFailed.
func Serve(ctx context.Context, serve func() error, timeout time.Duration, hooks ...Hook) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	go func() {
		if err := serve(); err != nil {
			cancel(fmt.Errorf("%w: %w", ErrServeFailed, err))
		}
	}()

	waitErr := Wait(ctx, timeout, hooks...)
	if cause := context.Cause(ctx); errors.Is(cause, ErrServeFailed) {
		return errors.Join(cause, waitErr)
	}
	return waitErr
}

// Wait блокируется до SIGINT/SIGTERM или отмены ctx, затем параллельно
// выполняет hooks, ограничивая их общим timeout.
func Wait(ctx context.Context, timeout time.Duration, hooks ...Hook) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	log := logger.Log(ctx)

	select {
	case sig := <-sigCh:
		log.Info(ctx, LogSignalReceived, zap.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info(ctx, LogSignalReceived, zap.NamedError("reason", context.Cause(ctx)))
	}

	return run(context.WithoutCancel(ctx), timeout, hooks)
}

func run(parent context.Context, timeout time.Duration, hooks []Hook) error {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	log := logger.Log(ctx)

	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for i, hook := range hooks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := hook(ctx); err != nil {
				log.Error(ctx, LogHookFailed, zap.Int("hook", i), zap.Error(err))
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(ctx, LogHooksDone)
	case <-ctx.Done():
		log.Warn(ctx, LogHooksTimeout, zap.Duration("timeout", timeout))
		return ctx.Err()
	}

	mu.Lock()
	defer mu.Unlock()
	return errors.Join(errs...)
}
