package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TxRepos bundles the repositories bound to one database transaction.
// The billing path mutates the account balance and the subscription
// record together, so both must live in the same scope.
type TxRepos struct {
	Accounts      AccountRepository
	Subscriptions SubscriptionRepository
	Points        PointTransactionRepository
}

// UnitOfWork runs a function inside a single database transaction.
// Rolls back on error, commits otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(tx TxRepos) error) error
}

type gormUnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &gormUnitOfWork{db: db}
}

func (u *gormUnitOfWork) Do(ctx context.Context, fn func(tx TxRepos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(TxRepos{
			Accounts:      NewAccountRepository(tx),
			Subscriptions: NewSubscriptionRepository(tx),
			Points:        NewPointTransactionRepository(tx),
		})
	})
}
