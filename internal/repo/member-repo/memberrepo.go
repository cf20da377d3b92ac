package memberrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
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

func (repo *Repository) Exists(ctx context.Context, externalID int64) (bool, error) {
	var exists bool
	err := repo.db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM members WHERE external_id = $1)", externalID).Scan(&exists)
	if err != nil {
		zap.L().Error("can't check member existence", zap.Error(err))
		return false, domain.StorageFailure(err)
	}
	return exists, nil
}

func (repo *Repository) FindByExternalID(ctx context.Context, externalID int64) (*domain.Member, error) {
	query := `
		SELECT id, external_id, first_name, last_name, phone, is_active, created_at
		FROM members
		WHERE external_id = $1
	`
	var member domain.Member
	err := repo.db.QueryRow(ctx, query, externalID).Scan(
		&member.ID, &member.ExternalID, &member.FirstName, &member.LastName,
		&member.Phone, &member.IsActive, &member.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find member", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return &member, nil
}

func (repo *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	query := `
		INSERT INTO members (external_id, first_name, last_name, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`
	err := repo.db.QueryRow(ctx, query, member.ExternalID, member.FirstName, member.LastName, member.Phone).
		Scan(&member.ID, &member.IsActive, &member.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrDuplicateMember
		}
		zap.L().Error("can't save member", zap.Error(err))
		return nil, domain.StorageFailure(err)
	}
	return member, nil
}
