package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"librio/internal/models/db_models"
	"librio/internal/models/response_models"
	"librio/internal/repositories"
	"librio/pkg/utils"
)

type PointServiceInterface interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (*response_models.PointBalanceResponse, error)
	GetHistory(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.PointTransaction, error)
	// ConfirmTopUp settles a pending top-up once the gateway reports it
	// paid. Idempotent: webhook retries for an already-paid order are a
	// no-op.
	ConfirmTopUp(ctx context.Context, providerTxnID string) error
}

type PointService struct {
	uow         repositories.UnitOfWork
	accountRepo repositories.AccountRepository
	txnRepo     repositories.PointTransactionRepository
}

func NewPointService(
	uow repositories.UnitOfWork,
	accountRepo repositories.AccountRepository,
	txnRepo repositories.PointTransactionRepository,
) PointServiceInterface {
	return &PointService{
		uow:         uow,
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

func (p *PointService) GetBalance(ctx context.Context, accountID uuid.UUID) (*response_models.PointBalanceResponse, error) {
	account, err := p.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return &response_models.PointBalanceResponse{
		AccountID: account.ID,
		Points:    account.Points,
	}, nil
}

func (p *PointService) GetHistory(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.PointTransaction, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	txns, err := p.txnRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txns, nil
}

func (p *PointService) ConfirmTopUp(ctx context.Context, providerTxnID string) error {
	return p.uow.Do(ctx, func(tx repositories.TxRepos) error {
		txn, err := tx.Points.FindByProviderTxnID(ctx, providerTxnID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if txn == nil {
			// Ack unknown orders so the gateway stops retrying.
			log.Printf("points: top-up confirmation for unknown order %s", providerTxnID)
			return nil
		}
		if txn.Status == db_models.TxnStatusPaid {
			return nil
		}

		account, err := tx.Accounts.FindByIDForUpdate(ctx, txn.AccountID)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if account == nil {
			return utils.ErrAccountNotFound
		}

		account.Points += txn.Amount
		if err := tx.Accounts.Save(ctx, account); err != nil {
			return utils.ErrDatabaseError
		}

		now := time.Now().Unix()
		txn.Status = db_models.TxnStatusPaid
		txn.PaidAt = &now
		txn.BalanceAfter = account.Points
		if err := tx.Points.Save(ctx, txn); err != nil {
			return utils.ErrDatabaseError
		}
		return nil
	})
}

// applyPointChange mutates a row-locked account balance and writes the
// matching ledger row. The caller owns the transaction; a balance that
// would go negative fails the whole unit of work with no partial effect.
func applyPointChange(
	ctx context.Context,
	tx repositories.TxRepos,
	account *db_models.Account,
	delta int64,
	kind db_models.TransactionKind,
) (*db_models.PointTransaction, error) {
	newBalance := account.Points + delta
	if newBalance < 0 {
		return nil, utils.ErrNotEnoughPoints
	}

	account.Points = newBalance
	if err := tx.Accounts.Save(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now().Unix()
	txn := &db_models.PointTransaction{
		AccountID:    account.ID,
		Amount:       delta,
		BalanceAfter: newBalance,
		Kind:         kind,
		Status:       db_models.TxnStatusPaid,
		PaidAt:       &now,
	}
	if err := tx.Points.Insert(ctx, txn); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return txn, nil
}
