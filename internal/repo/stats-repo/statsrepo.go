package statsrepo

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) SumSpent(ctx context.Context, memberID int, txType domain.TransactionType, since time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)::float8
		FROM transactions
		WHERE member_id = $1 AND transaction_type = $2 AND created_at >= $3
	`
	var spent float64
	if err := r.db.QueryRow(ctx, query, memberID, string(txType), since).Scan(&spent); err != nil {
		zap.L().Error("can't sum spent amount", zap.Error(err))
		return 0, domain.StorageFailure(err)
	}
	return spent, nil
}

// CountTrainings counts the member's participations in sessions started at or
// after since. participants == 0 disables the group size filter.
func (r *Repository) CountTrainings(ctx context.Context, memberID int, since time.Time, participants int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM participations p
		JOIN training_sessions ts ON p.training_session_id = ts.id
		WHERE p.member_id = $1 AND ts.started_at >= $2
	`
	args := []any{memberID, since}
	if participants > 0 {
		query += ` AND p.participants_count = $3`
		args = append(args, participants)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		zap.L().Error("can't count trainings", zap.Error(err))
		return 0, domain.StorageFailure(err)
	}
	return count, nil
}
