package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionKind string

const (
	TxnKindTopUp              TransactionKind = "topup"
	TxnKindSubscriptionCharge TransactionKind = "subscription_charge"
)

type TransactionStatus string

const (
	TxnStatusPending TransactionStatus = "pending"
	TxnStatusPaid    TransactionStatus = "paid"
	TxnStatusFailed  TransactionStatus = "failed"
)

// PointTransaction is the audit row written for every point balance change.
// Top-ups start pending and are confirmed by the payment webhook; charges
// are written already paid inside the billing transaction.
type PointTransaction struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Signed point delta; negative for charges.
	Amount       int64             `gorm:"not null"`
	BalanceAfter int64             `gorm:"not null"`
	Kind         TransactionKind   `gorm:"index"`
	Status       TransactionStatus `gorm:"index"`

	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"index"` // idempotency across webhook retries
	PaidAt        *int64

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Account Account `gorm:"foreignKey:AccountID"`
}
