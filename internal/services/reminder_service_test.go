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

func TestSweepNotifiesExpiringMembers(t *testing.T) {
	expiringToday := &db_models.Subscription{
		AccountID: uuid.New(),
		ExpDate:   utils.DayUnix(testDay),
	}
	expiringTomorrow := &db_models.Subscription{
		AccountID: uuid.New(),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, 1)),
	}
	expiringNextWeek := &db_models.Subscription{
		AccountID: uuid.New(),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, 7)),
	}

	subs := newFakeSubscriptionRepo(expiringToday, expiringTomorrow, expiringNextWeek)
	notifier := &recordingNotifier{}
	svc := NewReminderService(subs, notifier, fixedClock(testDay))

	require.NoError(t, svc.Sweep(context.Background()))

	require.Len(t, notifier.expiringToday, 1)
	assert.Equal(t, utils.DayUnix(testDay), notifier.expiringToday[0].expDate)

	require.Len(t, notifier.expiringSoon, 1)
	assert.Equal(t, utils.DayUnix(testDay.AddDate(0, 0, 1)), notifier.expiringSoon[0].expDate)
}

func TestSweepWithNothingExpiring(t *testing.T) {
	subs := newFakeSubscriptionRepo(&db_models.Subscription{
		AccountID: uuid.New(),
		ExpDate:   utils.DayUnix(testDay.AddDate(0, 0, 14)),
	})
	notifier := &recordingNotifier{}
	svc := NewReminderService(subs, notifier, fixedClock(testDay))

	require.NoError(t, svc.Sweep(context.Background()))
	assert.Empty(t, notifier.expiringToday)
	assert.Empty(t, notifier.expiringSoon)
}
