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

// AdvertisementRepository хранит объявления в таблице advertisement.
type AdvertisementRepository struct {
	db Querier
}

// NewAdvertisementRepository создает репозиторий объявлений.
func NewAdvertisementRepository(db Querier) repositories.AdvertisementRepository {
	return &AdvertisementRepository{db: db}
}

// Create сохраняет объявление. Отказ по ограничениям схемы возвращается
// как entities.ErrAdvertisementRejected, остальные ошибки - как есть.
func (r *AdvertisementRepository) Create(ctx context.Context, adv *entities.Advertisement) (int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "advertisement"), zap.String("method", "Create"))

	query := `
        INSERT INTO advertisement (headline, description, owner_id)
        VALUES ($1, $2, $3)
        RETURNING id
    `

	var id int64
	err := r.db.QueryRow(ctx, query, adv.Headline, adv.Description, adv.OwnerID).Scan(&id)
	if err != nil {
		if isConstraintViolation(err) {
			log.Warn(ctx, "advertisement rejected by constraints",
				zap.Int64("owner_id", adv.OwnerID), zap.String("sqlstate", sqlState(err)))
			return 0, fmt.Errorf("%w: %w", entities.ErrAdvertisementRejected, err)
		}
		log.Error(ctx, "error creating advertisement", zap.Error(err))
		return 0, fmt.Errorf("error creating advertisement: %w", err)
	}

	return id, nil
}

// FindByID находит объявление по идентификатору.
func (r *AdvertisementRepository) FindByID(ctx context.Context, id int64) (*entities.Advertisement, error) {
	log := logger.Log(ctx).With(zap.String("repository", "advertisement"), zap.String("method", "FindByID"))

	query := `
        SELECT id, headline, description, created_at, owner_id
        FROM advertisement
        WHERE id = $1
    `

	var adv entities.Advertisement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&adv.ID,
		&adv.Headline,
		&adv.Description,
		&adv.CreatedAt,
		&adv.OwnerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "advertisement not found", zap.Int64("id", id))
			return nil, entities.ErrAdvertisementNotFound
		}
		log.Error(ctx, "error finding advertisement by id", zap.Error(err))
		return nil, fmt.Errorf("error querying advertisement by id: %w", err)
	}

	return &adv, nil
}

// Delete удаляет объявление по идентификатору.
func (r *AdvertisementRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "advertisement"), zap.String("method", "Delete"))

	query := `
        DELETE FROM advertisement
        WHERE id = $1
    `

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Error(ctx, "error deleting advertisement", zap.Error(err))
		return fmt.Errorf("error deleting advertisement: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "advertisement not found for deletion", zap.Int64("id", id))
		return entities.ErrAdvertisementNotFound
	}

	return nil
}

// CountByOwner считает объявления пользователя.
func (r *AdvertisementRepository) CountByOwner(ctx context.Context, ownerID int64) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM advertisement
        WHERE owner_id = $1
    `

	var count int64
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(&count); err != nil {
		logger.Log(ctx).Error(ctx, "error counting advertisements",
			zap.Int64("owner_id", ownerID), zap.Error(err))
		return 0, fmt.Errorf("error counting advertisements: %w", err)
	}

	return int(count), nil
}

// DeleteByOwner удаляет все объявления пользователя и возвращает их идентификаторы.
func (r *AdvertisementRepository) DeleteByOwner(ctx context.Context, ownerID int64) ([]int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "advertisement"), zap.String("method", "DeleteByOwner"))

	query := `
        DELETE FROM advertisement
        WHERE owner_id = $1
        RETURNING id
    `

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		log.Error(ctx, "error deleting advertisements by owner", zap.Error(err))
		return nil, fmt.Errorf("error deleting advertisements by owner: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		log.Error(ctx, "error reading deleted advertisement ids", zap.Error(err))
		return nil, fmt.Errorf("error reading deleted advertisement ids: %w", err)
	}

	log.Debug(ctx, "advertisements deleted", zap.Int64("owner_id", ownerID), zap.Int("count", len(ids)))
	return ids, nil
}
