package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"adboard/internal/board/domain/entities"
	"adboard/internal/board/ports/repositories"
	"adboard/pkg/logger"
)

// UserRepository хранит пользователей в таблице "user".
type UserRepository struct {
	db Querier
}

// NewUserRepository создает репозиторий пользователей.
func NewUserRepository(db Querier) repositories.UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет пользователя и возвращает присвоенный идентификатор.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO "user" (username, password)
        VALUES ($1, $2)
        RETURNING id
    `

	var id int64
	err := r.db.QueryRow(ctx, query, user.Username, user.PasswordHash).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "username already taken", zap.String("username", user.Username))
			return 0, fmt.Errorf("%w: %w", entities.ErrUsernameTaken, err)
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// FindByID находит пользователя по идентификатору.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `
        SELECT id, username, password
        FROM "user"
        WHERE id = $1
    `

	var user entities.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// Delete удаляет пользователя по идентификатору.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))

	query := `
        DELETE FROM "user"
        WHERE id = $1
    `

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting user", zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for deletion", zap.Int64("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}
