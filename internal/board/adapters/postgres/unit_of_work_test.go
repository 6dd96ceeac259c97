package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adboard/internal/board/adapters/postgres"
	"adboard/internal/board/domain/entities"
	"adboard/internal/board/ports/repositories"
)

func TestUnitOfWork_Do(t *testing.T) {
	ctx := testContext(t)

	t.Run("commits on success", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "user"`).
			WithArgs("bob", "hash").
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectCommit()

		var id int64
		err = postgres.NewUnitOfWork(mock).Do(ctx, func(ctx context.Context, repos repositories.Repositories) error {
			var createErr error
			id, createErr = repos.Users().Create(ctx, &entities.User{Username: "bob", PasswordHash: "hash"})
			return createErr
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and returns the error unwrapped", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id, username, password`).
			WithArgs(int64(9)).
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password"}))
		mock.ExpectRollback()

		err = postgres.NewUnitOfWork(mock).Do(ctx, func(ctx context.Context, repos repositories.Repositories) error {
			_, findErr := repos.Users().FindByID(ctx, 9)
			return findErr
		})

		require.ErrorIs(t, err, entities.ErrUserNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		beginErr := errors.New("pool exhausted")
		mock.ExpectBegin().WillReturnError(beginErr)

		called := false
		err = postgres.NewUnitOfWork(mock).Do(ctx, func(context.Context, repositories.Repositories) error {
			called = true
			return nil
		})

		require.ErrorIs(t, err, beginErr)
		assert.False(t, called)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("commit failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		commitErr := errors.New("serialization failure")
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(commitErr)
		mock.ExpectRollback()

		err = postgres.NewUnitOfWork(mock).Do(ctx, func(context.Context, repositories.Repositories) error {
			return nil
		})

		require.ErrorIs(t, err, commitErr)
		assert.Contains(t, err.Error(), "failed to commit transaction")
	})
}
