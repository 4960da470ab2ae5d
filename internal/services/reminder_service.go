package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"librio/internal/repositories"
	"librio/pkg/utils"
)

// ReminderService runs the daily sweep over subscriptions expiring today
// or tomorrow and dispatches reminder mail. Read-only: it never mutates
// ledger or subscription state.
type ReminderService struct {
	subRepo  repositories.SubscriptionRepository
	notifier NotifierInterface
	clock    func() time.Time
	cron     *cron.Cron
}

func NewReminderService(
	subRepo repositories.SubscriptionRepository,
	notifier NotifierInterface,
	clock func() time.Time,
) *ReminderService {
	if clock == nil {
		clock = time.Now
	}
	return &ReminderService{
		subRepo:  subRepo,
		notifier: notifier,
		clock:    clock,
	}
}

// Start schedules the sweep every day at 09:00 UTC.
func (r *ReminderService) Start() error {
	r.cron = cron.New(cron.WithLocation(time.UTC))
	_, err := r.cron.AddFunc("0 9 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := r.Sweep(ctx); err != nil {
			log.Printf("reminder: sweep failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

func (r *ReminderService) Stop() {
	if r.cron != nil {
		r.cron.Stop()
	}
}

// Sweep notifies every subscription whose expiry day is today or
// tomorrow. A record expiring today is still active (inclusive boundary),
// so both reminders go to members who can still renew in time.
func (r *ReminderService) Sweep(ctx context.Context) error {
	today := utils.TruncateToDay(r.clock())
	tomorrow := today.AddDate(0, 0, 1)

	subs, err := r.subRepo.ListExpiringBetween(ctx, today.Unix(), tomorrow.Unix())
	if err != nil {
		return err
	}

	for i := range subs {
		sub := &subs[i]
		if sub.ExpDate == today.Unix() {
			r.notifier.NotifyExpiringToday(&sub.Account, sub)
		} else {
			r.notifier.NotifyExpiringSoon(&sub.Account, sub)
		}
	}

	log.Printf("reminder: sweep done, %d subscriptions notified", len(subs))
	return nil
}
