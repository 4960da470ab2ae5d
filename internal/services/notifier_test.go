package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librio/internal/models/db_models"
	"librio/pkg/utils"
)

func TestMailNotifierDeliversQueuedJobs(t *testing.T) {
	mail := newFakeMailService()
	n := NewMailNotifier(mail, "https://librio.example.com")
	n.Start()

	account := &db_models.Account{Email: "ana@example.com"}
	sub := &db_models.Subscription{ExpDate: utils.DayUnix(testDay)}

	n.NotifySubscribed(account, sub)
	n.NotifyCanceled(account, sub)
	n.Stop() // drains the queue

	sent := mail.sentMails()
	require.Len(t, sent, 2)
	assert.Equal(t, "ana@example.com", sent[0].to)
	assert.Contains(t, sent[0].subject, "active")
	assert.Contains(t, sent[1].subject, "canceled")
}

func TestMailNotifierDropsWithoutRecipient(t *testing.T) {
	mail := newFakeMailService()
	n := NewMailNotifier(mail, "https://librio.example.com")
	n.Start()

	n.NotifySubscribed(&db_models.Account{}, &db_models.Subscription{})
	n.Stop()

	assert.Empty(t, mail.sentMails())
}
