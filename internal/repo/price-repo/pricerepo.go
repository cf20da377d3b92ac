package pricerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Find(ctx context.Context, duration, participants int) (*domain.PricePoint, error) {
	query := `
		SELECT id, duration_minutes, participants_count, price, description, is_active
		FROM price_points
		WHERE duration_minutes = $1 AND participants_count = $2 AND is_active = TRUE
	`
	var p domain.PricePoint
	err := r.db.QueryRow(ctx, query, duration, participants).
		Scan(&p.ID, &p.DurationMinutes, &p.ParticipantsCount, &p.Price, &p.Description, &p.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find price point", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return &p, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.PricePoint, error) {
	query := `
		SELECT id, duration_minutes, participants_count, price, description, is_active
		FROM price_points
		WHERE is_active = TRUE
		ORDER BY participants_count, duration_minutes
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get price points", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	defer rows.Close()

	var points []domain.PricePoint
	for rows.Next() {
		var p domain.PricePoint
		if err := rows.Scan(&p.ID, &p.DurationMinutes, &p.ParticipantsCount, &p.Price, &p.Description, &p.IsActive); err != nil {
			zap.L().Error("can't scan price point row", zap.Error(err))
			return nil, domain.StorageFailure(err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return points, nil
}

// Seed inserts the points whose natural key is absent and reports how many
// rows were added. Running it again is a no-op.
func (r *Repository) Seed(ctx context.Context, points []domain.PricePoint) (int64, error) {
	query := `
		INSERT INTO price_points (duration_minutes, participants_count, price, description)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (duration_minutes, participants_count) DO NOTHING
	`
	var inserted int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, p := range points {
			tag, err := r.db.Exec(ctx, query, p.DurationMinutes, p.ParticipantsCount, p.Price, p.Description)
			if err != nil {
				zap.L().Error("can't seed price point", zap.Int("duration", p.DurationMinutes),
					zap.Int("participants", p.ParticipantsCount), zap.Error(err))
				return err
			}
			inserted += tag.RowsAffected()
		}
		return nil
	})
	if err != nil {
		return 0, domain.StorageFailure(err)
	}
	return inserted, nil
}
