package transactionrepo

import (
	"context"

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

func (r *Repository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (member_id, subscription_id, training_session_id, transaction_type, amount, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, tx.MemberID, tx.SubscriptionID, tx.SessionID, string(tx.Type), tx.Amount, tx.Description, tx.CreatedAt).
		Scan(&tx.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return tx, nil
}
