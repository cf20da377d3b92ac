package repo

import (
	"testing"

	"github.com/GlebRadaev/tennisclub/internal/pg"
	memberrepo "github.com/GlebRadaev/tennisclub/internal/repo/member-repo"
	pricerepo "github.com/GlebRadaev/tennisclub/internal/repo/price-repo"
	statsrepo "github.com/GlebRadaev/tennisclub/internal/repo/stats-repo"
	subscriptionrepo "github.com/GlebRadaev/tennisclub/internal/repo/subscription-repo"
	trainingrepo "github.com/GlebRadaev/tennisclub/internal/repo/training-repo"
	transactionrepo "github.com/GlebRadaev/tennisclub/internal/repo/transaction-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &memberrepo.Repository{}, repo.MemberRepo)
	assert.IsType(t, &pricerepo.Repository{}, repo.PriceRepo)
	assert.IsType(t, &subscriptionrepo.Repository{}, repo.SubscriptionRepo)
	assert.IsType(t, &trainingrepo.Repository{}, repo.TrainingRepo)
	assert.IsType(t, &transactionrepo.Repository{}, repo.TransactionRepo)
	assert.IsType(t, &statsrepo.Repository{}, repo.StatsRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
