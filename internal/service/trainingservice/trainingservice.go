package trainingservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/tennisclub/internal/domain"
	"github.com/GlebRadaev/tennisclub/internal/pg"
)

//go:generate mockgen -source=trainingservice.go -destination=mock_deps.go -package=trainingservice

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type PriceTable interface {
	Lookup(ctx context.Context, duration, participants int) (float64, error)
}

type Ledger interface {
	GetActive(ctx context.Context, memberID int) (*domain.Subscription, error)
	Debit(ctx context.Context, subscriptionID int, amount float64) (float64, error)
}

type TrainingRepo interface {
	CreateSession(ctx context.Context, session *domain.TrainingSession) (*domain.TrainingSession, error)
	AddParticipant(ctx context.Context, p *domain.Participation) (*domain.Participation, error)
	FindByMemberID(ctx context.Context, memberID, limit int) ([]domain.TrainingHistoryItem, error)
}

type TransactionRepo interface {
	Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
}

type Service struct {
	prices          PriceTable
	ledger          Ledger
	trainingRepo    TrainingRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
	now             func() time.Time
}

func New(prices PriceTable, ledger Ledger, trainingRepo TrainingRepo, transactionRepo TransactionRepo, txManager pg.TXManager, now func() time.Time) *Service {
	return &Service{
		prices:          prices,
		ledger:          ledger,
		trainingRepo:    trainingRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
		now:             now,
	}
}

// Record prices the training, charges the member's active subscription and
// stores the session, the participation and the transaction. The debit and
// the three inserts share one transaction: either all of them land or none.
func (s *Service) Record(ctx context.Context, req domain.TrainingRequest) (*domain.SessionRecord, error) {
	price, err := s.prices.Lookup(ctx, req.DurationMinutes, req.ParticipantsCount)
	if err != nil {
		return nil, err
	}

	sub, err := s.ledger.GetActive(ctx, req.MemberID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNoActiveSubscription
	}

	record := &domain.SessionRecord{
		SubscriptionID:    sub.ID,
		Price:             price,
		DurationMinutes:   req.DurationMinutes,
		ParticipantsCount: req.ParticipantsCount,
		CourtType:         strings.TrimSpace(req.CourtType),
		CoachName:         strings.TrimSpace(req.CoachName),
		StartedAt:         s.now(),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.ledger.Debit(ctx, sub.ID, price)
		if err != nil {
			return err
		}

		session, err := s.trainingRepo.CreateSession(ctx, &domain.TrainingSession{
			StartedAt:       record.StartedAt,
			DurationMinutes: record.DurationMinutes,
			CourtType:       record.CourtType,
			CoachName:       record.CoachName,
		})
		if err != nil {
			return err
		}

		_, err = s.trainingRepo.AddParticipant(ctx, &domain.Participation{
			SessionID:         session.ID,
			MemberID:          req.MemberID,
			SubscriptionID:    sub.ID,
			AmountPaid:        price,
			ParticipantsCount: req.ParticipantsCount,
		})
		if err != nil {
			return err
		}

		sessionID := session.ID
		_, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			MemberID:       req.MemberID,
			SubscriptionID: sub.ID,
			SessionID:      &sessionID,
			Type:           domain.TransactionTraining,
			Amount:         price,
			Description:    fmt.Sprintf("Training: %d min, %d pers.", req.DurationMinutes, req.ParticipantsCount),
			CreatedAt:      record.StartedAt,
		})
		if err != nil {
			return err
		}

		record.SessionID = session.ID
		record.Balance = balance
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			zap.L().Info("training rejected", zap.Int("memberID", req.MemberID), zap.Float64("price", price),
				zap.Float64("balance", sub.CurrentBalance))
			return nil, err
		}
		zap.L().Error("failed to record training, rolled back", zap.Int("memberID", req.MemberID), zap.Error(err))
		return nil, domain.StorageFailure(err)
	}

	zap.L().Info("training recorded",
		zap.Int("memberID", req.MemberID),
		zap.Int("sessionID", record.SessionID),
		zap.Float64("price", record.Price),
		zap.Float64("balance", record.Balance),
	)
	return record, nil
}

func (s *Service) History(ctx context.Context, memberID, limit int) ([]domain.TrainingHistoryItem, error) {
	if limit <= 0 || limit > maxHistoryLimit {
		limit = defaultHistoryLimit
	}
	items, err := s.trainingRepo.FindByMemberID(ctx, memberID, limit)
	if err != nil {
		zap.L().Error("failed to get training history", zap.Error(err))
		return nil, err
	}
	return items, nil
}
