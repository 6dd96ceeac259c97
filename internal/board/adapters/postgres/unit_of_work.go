package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"adboard/internal/board/ports/repositories"
	"adboard/pkg/logger"
)

const (
	errBeginTx        = "failed to begin transaction"
	errCommitTx       = "failed to commit transaction"
	logRollbackFailed = "failed to release transaction"
)

// UnitOfWork открывает транзакцию pgx на каждый вызов Do.
type UnitOfWork struct {
	db TxBeginner
}

// NewUnitOfWork создает единицу работы поверх пула.
func NewUnitOfWork(db TxBeginner) repositories.UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do выполняет fn в транзакции. Ошибка fn возвращается без обертки,
// чтобы доменные ошибки доходили до транспорта.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos repositories.Repositories) error) error {
	log := logger.Log(ctx).With(zap.String("component", "unit_of_work"))

	tx, err := u.db.Begin(ctx)
	if err != nil {
		log.Error(ctx, errBeginTx, zap.Error(err))
		return fmt.Errorf("%s: %w", errBeginTx, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			log.Warn(ctx, logRollbackFailed, zap.Error(rbErr))
		}
	}()

	if err := fn(ctx, NewRepositoryFactory(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, errCommitTx, zap.Error(err))
		return fmt.Errorf("%s: %w", errCommitTx, err)
	}
	committed = true

	return nil
}
