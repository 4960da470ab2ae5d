package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librio/internal/models/db_models"
	"librio/pkg/utils"
)

var testDay = time.Date(2026, 3, 10, 15, 4, 5, 0, time.UTC)

type subscriptionFixture struct {
	svc      SubscriptionServiceInterface
	accounts *fakeAccountRepo
	subs     *fakeSubscriptionRepo
	points   *fakePointTxnRepo
	notifier *recordingNotifier
}

func newSubscriptionFixture(accounts *fakeAccountRepo, subs *fakeSubscriptionRepo) *subscriptionFixture {
	points := &fakePointTxnRepo{}
	notifier := &recordingNotifier{}
	return &subscriptionFixture{
		svc:      NewSubscriptionService(newFakeUnitOfWork(accounts, subs, points), subs, notifier, fixedClock(testDay)),
		accounts: accounts,
		subs:     subs,
		points:   points,
		notifier: notifier,
	}
}

func TestSubscribeNewMemberChargesAndOpensPeriod(t *testing.T) {
	account := &db_models.Account{Email: "ana@example.com", Points: 14900}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo())

	err := f.svc.Subscribe(context.Background(), account.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(0), account.Points)

	sub := f.subs.subs[account.ID]
	require.NotNil(t, sub)
	assert.Equal(t, utils.DayUnix(testDay), sub.SubDate)
	assert.Equal(t, utils.AddBillingMonth(testDay).Unix(), sub.ExpDate)
	assert.False(t, sub.Canceled)

	require.Len(t, f.points.txns, 1)
	txn := f.points.txns[0]
	assert.Equal(t, -SubscriptionCostPoints, txn.Amount)
	assert.Equal(t, int64(0), txn.BalanceAfter)
	assert.Equal(t, db_models.TxnKindSubscriptionCharge, txn.Kind)
	assert.Equal(t, db_models.TxnStatusPaid, txn.Status)

	require.Len(t, f.notifier.subscribed, 1)
	assert.Equal(t, account.ID, f.notifier.subscribed[0].accountID)
}

func TestSubscribeInsufficientBalance(t *testing.T) {
	account := &db_models.Account{Email: "ana@example.com", Points: 100}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo())

	err := f.svc.Subscribe(context.Background(), account.ID)
	assert.ErrorIs(t, err, utils.ErrNotEnoughPoints)

	assert.Equal(t, int64(100), account.Points)
	assert.Nil(t, f.subs.subs[account.ID])
	assert.Empty(t, f.points.txns)
	assert.Empty(t, f.notifier.subscribed)
}

func TestSubscribeActivePeriodBlocked(t *testing.T) {
	account := &db_models.Account{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com", Points: 50000}
	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, 0, -20)),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, 10)),
	}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))

	err := f.svc.Subscribe(context.Background(), account.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
	assert.Equal(t, int64(50000), account.Points)
	assert.Empty(t, f.points.txns)
}

func TestSubscribeCanceledButUnexpiredBlocked(t *testing.T) {
	// Cancellation does not shorten the paid period, so a canceled member
	// cannot buy a second period until the first one ends.
	account := &db_models.Account{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com", Points: 50000}
	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, 0, -20)),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, 10)),
		Canceled:  true,
	}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))

	err := f.svc.Subscribe(context.Background(), account.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
	assert.Equal(t, int64(50000), account.Points)
}

func TestSubscribeOnExpiryDayBlocked(t *testing.T) {
	// The expiry day itself is still covered.
	account := &db_models.Account{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com", Points: 50000}
	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, -1, 0)),
		ExpDate:   utils.DayUnix(testDay),
	}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))

	err := f.svc.Subscribe(context.Background(), account.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
}

func TestSubscribeExpiredCanceledRenewsInPlace(t *testing.T) {
	account := &db_models.Account{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com", Points: 20000}
	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, -2, 0)),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, -1)),
		Canceled:  true,
	}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))
	originalID := sub.ID

	err := f.svc.Subscribe(context.Background(), account.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(5100), account.Points)

	renewed := f.subs.subs[account.ID]
	require.NotNil(t, renewed)
	assert.Equal(t, originalID, renewed.ID, "renewal must reuse the existing record")
	assert.Equal(t, utils.DayUnix(testDay), renewed.SubDate)
	assert.Equal(t, utils.AddBillingMonth(testDay).Unix(), renewed.ExpDate)
	assert.False(t, renewed.Canceled, "renewal clears the stale cancel flag")

	require.Len(t, f.notifier.subscribed, 1)
}

func TestSubscribeAccountMissing(t *testing.T) {
	f := newSubscriptionFixture(newFakeAccountRepo(), newFakeSubscriptionRepo())

	err := f.svc.Subscribe(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestSubscribeActiveGuardBeforeBalanceGuard(t *testing.T) {
	// Active membership with an empty balance: the eligibility check wins,
	// the caller is told they are already subscribed, not that they are broke.
	account := &db_models.Account{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com", Points: 0}
	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, 0, -5)),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, 25)),
	}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))

	err := f.svc.Subscribe(context.Background(), account.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadySubscribed)
}

func TestCancelActiveSubscription(t *testing.T) {
	account := &db_models.Account{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com", Points: 500}
	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, 0, -5)),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, 25)),
	}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))

	err := f.svc.Cancel(context.Background(), account.ID)
	require.NoError(t, err)

	assert.True(t, f.subs.subs[account.ID].Canceled)
	assert.Equal(t, sub.ExpDate, f.subs.subs[account.ID].ExpDate, "cancel never shortens the period")
	assert.Equal(t, int64(500), account.Points, "cancel never refunds")

	require.Len(t, f.notifier.canceled, 1)
	assert.Equal(t, account.ID, f.notifier.canceled[0].accountID)
}

func TestCancelWithoutRecord(t *testing.T) {
	account := &db_models.Account{Email: "ana@example.com"}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo())

	err := f.svc.Cancel(context.Background(), account.ID)
	assert.ErrorIs(t, err, utils.ErrSubscriptionNotFound)
	assert.Empty(t, f.notifier.canceled)
}

func TestCancelTwice(t *testing.T) {
	account := &db_models.Account{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com"}
	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, 0, -5)),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, 25)),
		Canceled:  true,
	}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))

	err := f.svc.Cancel(context.Background(), account.ID)
	assert.ErrorIs(t, err, utils.ErrSubscriptionCanceled)
}

func TestCancelExpiredNotCanceled(t *testing.T) {
	// Allowed; the flag flips even though the period is already over.
	account := &db_models.Account{BaseModel: db_models.BaseModel{ID: uuid.New()}, Email: "ana@example.com"}
	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, -2, 0)),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, -3)),
	}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))

	err := f.svc.Cancel(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, f.subs.subs[account.ID].Canceled)
}

func TestGetSubscription(t *testing.T) {
	account := &db_models.Account{Email: "ana@example.com"}
	f := newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo())

	resp, err := f.svc.GetSubscription(context.Background(), account.ID)
	require.NoError(t, err)
	assert.Nil(t, resp, "never-subscribed accounts have no record")

	sub := &db_models.Subscription{
		AccountID: account.ID,
		SubDate:   utils.DayUnix(testDay.AddDate(0, 0, -5)),
		ExpDate:   utils.DayUnix(testDay),
		Canceled:  true,
	}
	f = newSubscriptionFixture(newFakeAccountRepo(account), newFakeSubscriptionRepo(sub))

	resp, err = f.svc.GetSubscription(context.Background(), account.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, account.ID, resp.AccountID)
	assert.True(t, resp.Canceled)
	assert.True(t, resp.IsActive, "expiry day still counts as active")
}
