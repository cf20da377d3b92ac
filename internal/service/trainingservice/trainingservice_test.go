package trainingservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/pg"
	subscriptionrepo "github.com/GlebRadaev/tennisclub/internal/repo/subscription-repo"
	trainingrepo "github.com/GlebRadaev/tennisclub/internal/repo/training-repo"
	transactionrepo "github.com/GlebRadaev/tennisclub/internal/repo/transaction-repo"
	"github.com/GlebRadaev/tennisclub/internal/service/subscriptionservice"
)

var fixedNow = time.Date(2024, time.May, 20, 18, 30, 0, 0, time.UTC)

type mocks struct {
	prices       *MockPriceTable
	ledger       *MockLedger
	trainings    *MockTrainingRepo
	transactions *MockTransactionRepo
	txManager    *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		prices:       NewMockPriceTable(ctrl),
		ledger:       NewMockLedger(ctrl),
		trainings:    NewMockTrainingRepo(ctrl),
		transactions: NewMockTransactionRepo(ctrl),
		txManager:    pg.NewMockTXManager(ctrl),
	}
	service := New(m.prices, m.ledger, m.trainings, m.transactions, m.txManager, func() time.Time { return fixedNow })
	defer ctrl.Finish()
	return service, m
}

func runInTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestRecord(t *testing.T) {
	service, m := NewMock(t)
	sub := &domain.Subscription{ID: 7, MemberID: 1, CurrentBalance: 2000, Status: domain.SubscriptionActive}
	req := domain.TrainingRequest{MemberID: 1, DurationMinutes: 60, ParticipantsCount: 1, CourtType: " hard ", CoachName: "Anna"}

	tests := []struct {
		name          string
		req           domain.TrainingRequest
		prepareMock   func()
		expectedError error
		expected      *domain.SessionRecord
	}{
		{
			name: "Successful recording",
			req:  req,
			prepareMock: func() {
				m.prices.EXPECT().Lookup(gomock.Any(), 60, 1).Return(1500.0, nil)
				m.ledger.EXPECT().GetActive(gomock.Any(), 1).Return(sub, nil)
				runInTx(m)
				m.ledger.EXPECT().Debit(gomock.Any(), 7, 1500.0).Return(500.0, nil)
				m.trainings.EXPECT().CreateSession(gomock.Any(), &domain.TrainingSession{
					StartedAt:       fixedNow,
					DurationMinutes: 60,
					CourtType:       "hard",
					CoachName:       "Anna",
				}).DoAndReturn(func(_ context.Context, s *domain.TrainingSession) (*domain.TrainingSession, error) {
					s.ID = 42
					return s, nil
				})
				m.trainings.EXPECT().AddParticipant(gomock.Any(), &domain.Participation{
					SessionID:         42,
					MemberID:          1,
					SubscriptionID:    7,
					AmountPaid:        1500,
					ParticipantsCount: 1,
				}).DoAndReturn(func(_ context.Context, p *domain.Participation) (*domain.Participation, error) {
					p.ID = 3
					return p, nil
				})
				sessionID := 42
				m.transactions.EXPECT().Create(gomock.Any(), &domain.Transaction{
					MemberID:       1,
					SubscriptionID: 7,
					SessionID:      &sessionID,
					Type:           domain.TransactionTraining,
					Amount:         1500,
					Description:    "Training: 60 min, 1 pers.",
					CreatedAt:      fixedNow,
				}).DoAndReturn(func(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
					tx.ID = 5
					return tx, nil
				})
			},
			expected: &domain.SessionRecord{
				SessionID:         42,
				SubscriptionID:    7,
				Price:             1500,
				Balance:           500,
				DurationMinutes:   60,
				ParticipantsCount: 1,
				CourtType:         "hard",
				CoachName:         "Anna",
				StartedAt:         fixedNow,
			},
		},
		{
			name: "No price for parameters",
			req:  domain.TrainingRequest{MemberID: 1, DurationMinutes: 45, ParticipantsCount: 1},
			prepareMock: func() {
				m.prices.EXPECT().Lookup(gomock.Any(), 45, 1).Return(0.0, domain.ErrNoPriceForParameters)
			},
			expectedError: domain.ErrNoPriceForParameters,
		},
		{
			name: "No active subscription",
			req:  req,
			prepareMock: func() {
				m.prices.EXPECT().Lookup(gomock.Any(), 60, 1).Return(1500.0, nil)
				m.ledger.EXPECT().GetActive(gomock.Any(), 1).Return(nil, nil)
			},
			expectedError: domain.ErrNoActiveSubscription,
		},
		{
			name: "Active subscription lookup fails",
			req:  req,
			prepareMock: func() {
				m.prices.EXPECT().Lookup(gomock.Any(), 60, 1).Return(1500.0, nil)
				m.ledger.EXPECT().GetActive(gomock.Any(), 1).Return(nil, domain.StorageFailure(errors.New("conn reset")))
			},
			expectedError: domain.ErrStorageFailure,
		},
		{
			name: "Insufficient funds",
			req:  req,
			prepareMock: func() {
				m.prices.EXPECT().Lookup(gomock.Any(), 60, 1).Return(1500.0, nil)
				m.ledger.EXPECT().GetActive(gomock.Any(), 1).Return(&domain.Subscription{ID: 7, CurrentBalance: 1000}, nil)
				runInTx(m)
				m.ledger.EXPECT().Debit(gomock.Any(), 7, 1500.0).Return(0.0, domain.ErrInsufficientFunds)
			},
			expectedError: domain.ErrInsufficientFunds,
		},
		{
			name: "Session insert fails",
			req:  req,
			prepareMock: func() {
				m.prices.EXPECT().Lookup(gomock.Any(), 60, 1).Return(1500.0, nil)
				m.ledger.EXPECT().GetActive(gomock.Any(), 1).Return(sub, nil)
				runInTx(m)
				m.ledger.EXPECT().Debit(gomock.Any(), 7, 1500.0).Return(500.0, nil)
				m.trainings.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			expectedError: domain.ErrStorageFailure,
		},
		{
			name: "Transaction insert fails",
			req:  req,
			prepareMock: func() {
				m.prices.EXPECT().Lookup(gomock.Any(), 60, 1).Return(1500.0, nil)
				m.ledger.EXPECT().GetActive(gomock.Any(), 1).Return(sub, nil)
				runInTx(m)
				m.ledger.EXPECT().Debit(gomock.Any(), 7, 1500.0).Return(500.0, nil)
				m.trainings.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(&domain.TrainingSession{ID: 42}, nil)
				m.trainings.EXPECT().AddParticipant(gomock.Any(), gomock.Any()).Return(&domain.Participation{ID: 3}, nil)
				m.transactions.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, domain.StorageFailure(errors.New("check violation")))
			},
			expectedError: domain.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			record, err := service.Record(context.Background(), tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, record)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, record)
		})
	}
}

// The debit and the inserts run on the same pgx transaction, so a failing
// transaction insert leaves the balance untouched.
func TestRecord_RollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer pool.Close()

	conn := pg.New(pool)
	prices := NewMockPriceTable(ctrl)
	ledger := subscriptionservice.New(subscriptionrepo.New(conn), func() time.Time { return fixedNow })
	service := New(prices, ledger, trainingrepo.New(conn), transactionrepo.New(conn), pg.NewTXManager(pool),
		func() time.Time { return fixedNow })

	prices.EXPECT().Lookup(gomock.Any(), 60, 1).Return(1500.0, nil)
	pool.ExpectQuery("FROM subscriptions").WithArgs(1).WillReturnRows(
		pgxmock.NewRows([]string{"id", "member_id", "number", "initial_amount", "current_balance",
			"start_date", "end_date", "status", "created_at"}).
			AddRow(7, 1, "A-100", 2000.0, 2000.0, fixedNow, (*time.Time)(nil), domain.SubscriptionActive, fixedNow))
	pool.ExpectBegin()
	pool.ExpectQuery("UPDATE subscriptions").WithArgs(1500.0, 7).
		WillReturnRows(pgxmock.NewRows([]string{"current_balance"}).AddRow(500.0))
	pool.ExpectQuery("INSERT INTO training_sessions").
		WithArgs(fixedNow, 60, "", "", "").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(42, fixedNow))
	pool.ExpectQuery("INSERT INTO participations").
		WithArgs(42, 1, 7, 1500.0, 1).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(3, fixedNow))
	pool.ExpectQuery("INSERT INTO transactions").
		WithArgs(1, 7, pgxmock.AnyArg(), "training", 1500.0, "Training: 60 min, 1 pers.", fixedNow).
		WillReturnError(errors.New("connection lost"))
	pool.ExpectRollback()

	record, err := service.Record(context.Background(), domain.TrainingRequest{MemberID: 1, DurationMinutes: 60, ParticipantsCount: 1})
	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.Nil(t, record)
	assert.NoError(t, pool.ExpectationsWereMet())
}

func TestHistory(t *testing.T) {
	service, m := NewMock(t)
	items := []domain.TrainingHistoryItem{
		{SessionID: 2, StartedAt: fixedNow, DurationMinutes: 90, ParticipantsCount: 2, AmountPaid: 1200},
		{SessionID: 1, StartedAt: fixedNow.Add(-24 * time.Hour), DurationMinutes: 60, ParticipantsCount: 1, AmountPaid: 1500},
	}

	tests := []struct {
		name          string
		limit         int
		prepareMock   func()
		expectedError error
		expected      []domain.TrainingHistoryItem
	}{
		{
			name:  "Explicit limit",
			limit: 5,
			prepareMock: func() {
				m.trainings.EXPECT().FindByMemberID(gomock.Any(), 1, 5).Return(items, nil)
			},
			expected: items,
		},
		{
			name:  "Zero limit falls back to default",
			limit: 0,
			prepareMock: func() {
				m.trainings.EXPECT().FindByMemberID(gomock.Any(), 1, 10).Return(items, nil)
			},
			expected: items,
		},
		{
			name:  "Oversized limit falls back to default",
			limit: 1000,
			prepareMock: func() {
				m.trainings.EXPECT().FindByMemberID(gomock.Any(), 1, 10).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name:  "Repository error",
			limit: 10,
			prepareMock: func() {
				m.trainings.EXPECT().FindByMemberID(gomock.Any(), 1, 10).Return(nil, domain.ErrStorageFailure)
			},
			expectedError: domain.ErrStorageFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			result, err := service.History(context.Background(), 1, tt.limit)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}
