package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librio/internal/models/db_models"
	"librio/pkg/utils"
)

func TestConfirmTopUpCreditsPendingTransaction(t *testing.T) {
	account := &db_models.Account{Email: "ana@example.com", Points: 100}
	accounts := newFakeAccountRepo(account)
	points := &fakePointTxnRepo{}
	txn := &db_models.PointTransaction{
		AccountID:     account.ID,
		Amount:        5000,
		Kind:          db_models.TxnKindTopUp,
		Status:        db_models.TxnStatusPending,
		Provider:      "payos",
		ProviderTxnID: "payos:42",
	}
	require.NoError(t, points.Insert(context.Background(), txn))

	svc := NewPointService(newFakeUnitOfWork(accounts, newFakeSubscriptionRepo(), points), accounts, points)

	err := svc.ConfirmTopUp(context.Background(), "payos:42")
	require.NoError(t, err)

	assert.Equal(t, int64(5100), account.Points)
	assert.Equal(t, db_models.TxnStatusPaid, txn.Status)
	assert.Equal(t, int64(5100), txn.BalanceAfter)
	require.NotNil(t, txn.PaidAt)
}

func TestConfirmTopUpIsIdempotent(t *testing.T) {
	account := &db_models.Account{Email: "ana@example.com", Points: 100}
	accounts := newFakeAccountRepo(account)
	points := &fakePointTxnRepo{}
	txn := &db_models.PointTransaction{
		AccountID:     account.ID,
		Amount:        5000,
		Kind:          db_models.TxnKindTopUp,
		Status:        db_models.TxnStatusPending,
		ProviderTxnID: "payos:42",
	}
	require.NoError(t, points.Insert(context.Background(), txn))

	svc := NewPointService(newFakeUnitOfWork(accounts, newFakeSubscriptionRepo(), points), accounts, points)

	require.NoError(t, svc.ConfirmTopUp(context.Background(), "payos:42"))
	require.NoError(t, svc.ConfirmTopUp(context.Background(), "payos:42"))
	require.NoError(t, svc.ConfirmTopUp(context.Background(), "payos:42"))

	assert.Equal(t, int64(5100), account.Points, "webhook retries must credit only once")
}

func TestConfirmTopUpUnknownOrderIsAcked(t *testing.T) {
	accounts := newFakeAccountRepo()
	points := &fakePointTxnRepo{}
	svc := NewPointService(newFakeUnitOfWork(accounts, newFakeSubscriptionRepo(), points), accounts, points)

	err := svc.ConfirmTopUp(context.Background(), "payos:999")
	assert.NoError(t, err, "unknown orders are acked so the gateway stops retrying")
}

func TestGetBalance(t *testing.T) {
	account := &db_models.Account{Email: "ana@example.com", Points: 777}
	accounts := newFakeAccountRepo(account)
	points := &fakePointTxnRepo{}
	svc := NewPointService(newFakeUnitOfWork(accounts, newFakeSubscriptionRepo(), points), accounts, points)

	resp, err := svc.GetBalance(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(777), resp.Points)

	_, err = svc.GetBalance(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestGetHistoryValidatesPaging(t *testing.T) {
	accounts := newFakeAccountRepo()
	points := &fakePointTxnRepo{}
	svc := NewPointService(newFakeUnitOfWork(accounts, newFakeSubscriptionRepo(), points), accounts, points)

	_, err := svc.GetHistory(context.Background(), uuid.New(), 0, 20)
	assert.ErrorIs(t, err, utils.ErrInvalidPage)

	_, err = svc.GetHistory(context.Background(), uuid.New(), 1, 0)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)

	_, err = svc.GetHistory(context.Background(), uuid.New(), 1, 101)
	assert.ErrorIs(t, err, utils.ErrInvalidPageSize)
}
