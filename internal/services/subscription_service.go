package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"librio/internal/models/db_models"
	"librio/internal/models/response_models"
	"librio/internal/repositories"
	"librio/pkg/utils"
)

// SubscriptionCostPoints is the fixed price of one billing cycle. No
// proration, no partial-period billing.
const SubscriptionCostPoints int64 = 14900

type SubscriptionServiceInterface interface {
	GetSubscription(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionResponse, error)
	Subscribe(ctx context.Context, accountID uuid.UUID) error
	Cancel(ctx context.Context, accountID uuid.UUID) error
}

// SubscriptionService is the sole authority for membership state
// transitions. Subscribe and Cancel each run their guard checks, the
// point debit and the record mutation inside one unit of work with the
// account row locked, so concurrent calls for the same user serialize.
type SubscriptionService struct {
	uow      repositories.UnitOfWork
	subRepo  repositories.SubscriptionRepository
	notifier NotifierInterface
	clock    func() time.Time
}

func NewSubscriptionService(
	uow repositories.UnitOfWork,
	subRepo repositories.SubscriptionRepository,
	notifier NotifierInterface,
	clock func() time.Time,
) SubscriptionServiceInterface {
	if clock == nil {
		clock = time.Now
	}
	return &SubscriptionService{
		uow:      uow,
		subRepo:  subRepo,
		notifier: notifier,
		clock:    clock,
	}
}

func (s *SubscriptionService) GetSubscription(ctx context.Context, accountID uuid.UUID) (*response_models.SubscriptionResponse, error) {
	sub, err := s.subRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, nil
	}
	return &response_models.SubscriptionResponse{
		ID:        sub.ID,
		AccountID: sub.AccountID,
		SubDate:   sub.SubDate,
		ExpDate:   sub.ExpDate,
		Canceled:  sub.Canceled,
		IsActive:  sub.IsActiveOn(s.clock()),
	}, nil
}

func (s *SubscriptionService) Subscribe(ctx context.Context, accountID uuid.UUID) error {
	today := utils.TruncateToDay(s.clock())

	var account *db_models.Account
	var sub *db_models.Subscription

	err := s.uow.Do(ctx, func(tx repositories.TxRepos) error {
		var err error
		account, err = tx.Accounts.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if account == nil {
			return utils.ErrAccountNotFound
		}

		sub, err = tx.Subscriptions.FindByAccountID(ctx, accountID)
		if err != nil {
			return utils.ErrDatabaseError
		}

		// An unexpired period blocks re-subscribe, canceled or not:
		// cancellation only opts out of renewal, the paid period still
		// runs to its end.
		if sub != nil && sub.IsActiveOn(today) {
			return utils.ErrAlreadySubscribed
		}

		// Billing precedes the record mutation. If the debit fails the
		// closure returns early and the transaction rolls back whole.
		if _, err := applyPointChange(ctx, tx, account, -SubscriptionCostPoints, db_models.TxnKindSubscriptionCharge); err != nil {
			return err
		}

		subDate := today.Unix()
		expDate := utils.AddBillingMonth(today).Unix()

		if sub == nil {
			sub = &db_models.Subscription{
				AccountID: accountID,
				SubDate:   subDate,
				ExpDate:   expDate,
				Canceled:  false,
			}
			if err := tx.Subscriptions.Insert(ctx, sub); err != nil {
				return utils.ErrDatabaseError
			}
			return nil
		}

		// Expired record: renew in place, clearing any stale cancel.
		sub.SubDate = subDate
		sub.ExpDate = expDate
		sub.Canceled = false
		if err := tx.Subscriptions.Save(ctx, sub); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.NotifySubscribed(account, sub)
	return nil
}

func (s *SubscriptionService) Cancel(ctx context.Context, accountID uuid.UUID) error {
	var account *db_models.Account
	var sub *db_models.Subscription

	err := s.uow.Do(ctx, func(tx repositories.TxRepos) error {
		var err error
		account, err = tx.Accounts.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if account == nil {
			return utils.ErrAccountNotFound
		}

		sub, err = tx.Subscriptions.FindByAccountID(ctx, accountID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if sub == nil {
			return utils.ErrSubscriptionNotFound
		}
		if sub.Canceled {
			return utils.ErrSubscriptionCanceled
		}

		// Canceling an expired-but-never-canceled record is allowed;
		// it has no effect on eligibility since the period is over.
		sub.Canceled = true
		if err := tx.Subscriptions.Save(ctx, sub); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifier.NotifyCanceled(account, sub)
	return nil
}
