package services

import (
	"fmt"
	"log"
	"time"

	"librio/internal/models/db_models"
)

// NotifierInterface dispatches subscription lifecycle mail. All methods are
// fire-and-forget: the billing transaction has already committed by the
// time a notification is attempted, so delivery failures are logged and
// never propagated to the caller.
type NotifierInterface interface {
	NotifySubscribed(account *db_models.Account, sub *db_models.Subscription)
	NotifyCanceled(account *db_models.Account, sub *db_models.Subscription)
	NotifyExpiringSoon(account *db_models.Account, sub *db_models.Subscription)
	NotifyExpiringToday(account *db_models.Account, sub *db_models.Subscription)
}

type notificationJob struct {
	to      string
	subject string
	body    string
}

// MailNotifier hands notification jobs to a bounded queue consumed by a
// single worker goroutine, so mail-provider latency never blocks a
// subscribe or cancel call. A full queue drops the job (with a log line)
// rather than blocking.
type MailNotifier struct {
	mail   IMailService
	ctaURL string
	jobs   chan notificationJob
	done   chan struct{}
}

func NewMailNotifier(mail IMailService, appBaseURL string) *MailNotifier {
	return &MailNotifier{
		mail:   mail,
		ctaURL: appBaseURL,
		jobs:   make(chan notificationJob, 256),
		done:   make(chan struct{}),
	}
}

func (n *MailNotifier) Start() {
	go n.worker()
}

// Stop drains the queue and waits for the worker to exit.
func (n *MailNotifier) Stop() {
	close(n.jobs)
	<-n.done
}

func (n *MailNotifier) worker() {
	defer close(n.done)
	for job := range n.jobs {
		if err := n.mail.SendMailToNotifyUser(job.to, job.subject, job.body, "Open your library", n.ctaURL); err != nil {
			log.Printf("notifier: failed to send %q to %s: %v", job.subject, job.to, err)
		}
	}
}

func (n *MailNotifier) enqueue(account *db_models.Account, subject, body string) {
	if account == nil || account.Email == "" {
		log.Printf("notifier: dropping %q, no recipient", subject)
		return
	}
	select {
	case n.jobs <- notificationJob{to: account.Email, subject: subject, body: body}:
	default:
		log.Printf("notifier: queue full, dropping %q to %s", subject, account.Email)
	}
}

func (n *MailNotifier) NotifySubscribed(account *db_models.Account, sub *db_models.Subscription) {
	n.enqueue(account, "Your membership is active",
		fmt.Sprintf("Welcome aboard! Your membership runs until %s. Enjoy unlimited reading.", formatDay(sub.ExpDate)))
}

func (n *MailNotifier) NotifyCanceled(account *db_models.Account, sub *db_models.Subscription) {
	n.enqueue(account, "Your membership has been canceled",
		fmt.Sprintf("Your membership stays active until %s and will not renew after that.", formatDay(sub.ExpDate)))
}

func (n *MailNotifier) NotifyExpiringSoon(account *db_models.Account, sub *db_models.Subscription) {
	n.enqueue(account, "Your membership expires tomorrow",
		fmt.Sprintf("Your membership expires on %s. Renew to keep reading without interruption.", formatDay(sub.ExpDate)))
}

func (n *MailNotifier) NotifyExpiringToday(account *db_models.Account, sub *db_models.Subscription) {
	n.enqueue(account, "Your membership expires today",
		fmt.Sprintf("Today (%s) is the last day of your membership.", formatDay(sub.ExpDate)))
}

func formatDay(dayUnix int64) string {
	return time.Unix(dayUnix, 0).UTC().Format("January 2, 2006")
}
