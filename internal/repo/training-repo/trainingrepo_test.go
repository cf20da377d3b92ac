package trainingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/tennisclub/internal/domain"
)

var startedAt = time.Date(2024, time.May, 20, 18, 30, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_CreateSession(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO training_sessions`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.TrainingSession
	}{
		{
			name: "Created",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(startedAt, 60, "hard", "Anna", "").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(42, startedAt))
			},
			result: &domain.TrainingSession{ID: 42, StartedAt: startedAt, DurationMinutes: 60, CourtType: "hard", CoachName: "Anna", CreatedAt: startedAt},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(startedAt, 60, "hard", "Anna", "").WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			session := &domain.TrainingSession{StartedAt: startedAt, DurationMinutes: 60, CourtType: "hard", CoachName: "Anna"}
			result, err := repo.CreateSession(context.Background(), session)

			assert.ErrorIs(t, err, tt.expectErr)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_AddParticipant(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO participations`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    *domain.Participation
	}{
		{
			name: "Created",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(42, 1, 10, 1500.0, 1).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, startedAt))
			},
			result: &domain.Participation{ID: 3, SessionID: 42, MemberID: 1, SubscriptionID: 10, AmountPaid: 1500, ParticipantsCount: 1, CreatedAt: startedAt},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(42, 1, 10, 1500.0, 1).WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			p := &domain.Participation{SessionID: 42, MemberID: 1, SubscriptionID: 10, AmountPaid: 1500, ParticipantsCount: 1}
			result, err := repo.AddParticipant(context.Background(), p)

			assert.ErrorIs(t, err, tt.expectErr)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByMemberID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`ORDER BY ts.started_at DESC`)
	columns := []string{"id", "started_at", "duration_minutes", "participants_count", "amount_paid", "court_type", "coach_name"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    []domain.TrainingHistoryItem
	}{
		{
			name: "History newest first",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 10).WillReturnRows(pgxmock.NewRows(columns).
					AddRow(43, startedAt, 90, 2, 1200.0, "clay", "").
					AddRow(42, startedAt.Add(-24*time.Hour), 60, 1, 1500.0, "hard", "Anna"))
			},
			result: []domain.TrainingHistoryItem{
				{SessionID: 43, StartedAt: startedAt, DurationMinutes: 90, ParticipantsCount: 2, AmountPaid: 1200, CourtType: "clay"},
				{SessionID: 42, StartedAt: startedAt.Add(-24 * time.Hour), DurationMinutes: 60, ParticipantsCount: 1, AmountPaid: 1500, CourtType: "hard", CoachName: "Anna"},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(1, 10).WillReturnError(errors.New("database error"))
			},
			expectErr: domain.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByMemberID(context.Background(), 1, 10)

			assert.ErrorIs(t, err, tt.expectErr)
			assert.Equal(t, tt.result, result)
		})
	}
}
