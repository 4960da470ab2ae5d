package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"librio/internal/models/db_models"
)

type PointTransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.PointTransaction) error
	Save(ctx context.Context, txn *db_models.PointTransaction) error
	FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.PointTransaction, error)
	ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.PointTransaction, error)
}

type pointTransactionRepository struct {
	db *gorm.DB
}

func NewPointTransactionRepository(db *gorm.DB) PointTransactionRepository {
	return &pointTransactionRepository{db: db}
}

func (p *pointTransactionRepository) Insert(ctx context.Context, txn *db_models.PointTransaction) error {
	return p.db.WithContext(ctx).Create(txn).Error
}

func (p *pointTransactionRepository) Save(ctx context.Context, txn *db_models.PointTransaction) error {
	return p.db.WithContext(ctx).Save(txn).Error
}

func (p *pointTransactionRepository) FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.PointTransaction, error) {
	var txn db_models.PointTransaction
	err := p.db.WithContext(ctx).First(&txn, "provider_txn_id = ?", providerTxnID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (p *pointTransactionRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page, pageSize int) ([]db_models.PointTransaction, error) {
	var txns []db_models.PointTransaction
	err := p.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&txns).Error
	return txns, err
}
