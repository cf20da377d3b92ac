package trainingrepo

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

func (r *Repository) CreateSession(ctx context.Context, session *domain.TrainingSession) (*domain.TrainingSession, error) {
	query := `
		INSERT INTO training_sessions (started_at, duration_minutes, court_type, coach_name, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, session.StartedAt, session.DurationMinutes, session.CourtType, session.CoachName, session.Notes).
		Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		zap.L().Error("can't save training session", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return session, nil
}

func (r *Repository) AddParticipant(ctx context.Context, p *domain.Participation) (*domain.Participation, error) {
	query := `
		INSERT INTO participations (training_session_id, member_id, subscription_id, amount_paid, participants_count)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, p.SessionID, p.MemberID, p.SubscriptionID, p.AmountPaid, p.ParticipantsCount).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		zap.L().Error("can't save participation", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return p, nil
}

func (r *Repository) FindByMemberID(ctx context.Context, memberID, limit int) ([]domain.TrainingHistoryItem, error) {
	query := `
		SELECT ts.id, ts.started_at, ts.duration_minutes, p.participants_count, p.amount_paid, ts.court_type, ts.coach_name
		FROM participations p
		JOIN training_sessions ts ON p.training_session_id = ts.id
		WHERE p.member_id = $1
		ORDER BY ts.started_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, memberID, limit)
	if err != nil {
		zap.L().Error("can't get trainings", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	defer rows.Close()

	var items []domain.TrainingHistoryItem
	for rows.Next() {
		var it domain.TrainingHistoryItem
		err := rows.Scan(&it.SessionID, &it.StartedAt, &it.DurationMinutes, &it.ParticipantsCount, &it.AmountPaid, &it.CourtType, &it.CoachName)
		if err != nil {
			zap.L().Error("can't scan training row", zap.Error(err))
			return nil, domain.StorageFailure(err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageFailure(err)
	}
	return items, nil
}
