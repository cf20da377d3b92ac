package subscriptionrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/pg"
)

const subscriptionColumns = `id, member_id, number, initial_amount, current_balance, start_date, end_date, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error) {
	query := `
		INSERT INTO subscriptions (member_id, number, initial_amount, current_balance, start_date, status)
		VALUES ($1, $2, $3, $3, $4, $5)
		RETURNING id, current_balance, created_at
	`
	err := r.db.QueryRow(ctx, query, sub.MemberID, sub.Number, sub.InitialAmount, sub.StartDate, string(sub.Status)).
		Scan(&sub.ID, &sub.CurrentBalance, &sub.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicateSubscriptionNumber
		}
		zap.L().Error("can't save subscription", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return sub, nil
}

// FindActive returns the most recently created active subscription with a
// positive balance, or nil when the member has none.
func (r *Repository) FindActive(ctx context.Context, memberID int) (*domain.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE member_id = $1 AND status = 'active' AND current_balance > 0
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	sub, err := scanSubscription(r.db.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find active subscription", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return sub, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID int) ([]domain.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		zap.L().Error("can't get subscriptions", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	defer rows.Close()

	var subs []domain.Subscription
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			zap.L().Error("can't scan subscription row", zap.Error(err))
			return nil, domain.StorageFailure(err)
		}
		subs = append(subs, *sub)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate subscription rows", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return subs, nil
}

// Debit decrements the balance only if it covers amount. The check and the
// write are one statement, so concurrent debits can't overdraw. A balance
// that reaches zero marks the subscription exhausted.
func (r *Repository) Debit(ctx context.Context, subscriptionID int, amount float64) (float64, error) {
	query := `
		UPDATE subscriptions
		SET current_balance = current_balance - $1,
			status = CASE WHEN current_balance - $1 = 0 THEN 'exhausted' ELSE status END
		WHERE id = $2 AND current_balance >= $1
		RETURNING current_balance
	`
	var balance float64
	err := r.db.QueryRow(ctx, query, amount, subscriptionID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientFunds
		}
		zap.L().Error("can't debit subscription", zap.Error(err))
		return 0, domain.StorageFailure(err)
	}
	return balance, nil
}

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var sub domain.Subscription
	err := row.Scan(
		&sub.ID, &sub.MemberID, &sub.Number, &sub.InitialAmount, &sub.CurrentBalance,
		&sub.StartDate, &sub.EndDate, &sub.Status, &sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
