package db_models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is the one-per-account membership record. The account keeps
// at most one row forever: renewals overwrite the period in place and
// cancellation only flips the flag, it never shortens the paid period.
type Subscription struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	// Calendar dates stored as unix seconds of midnight UTC.
	SubDate  int64 `gorm:"not null"`
	ExpDate  int64 `gorm:"not null"`
	Canceled bool  `gorm:"not null;default:false"`

	Account Account `gorm:"foreignKey:AccountID"`
}

// IsActiveOn reports whether the subscription is active on the given day.
// The expiry day itself still counts as active (inclusive boundary).
func (s *Subscription) IsActiveOn(today time.Time) bool {
	u := today.UTC()
	day := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return s.ExpDate >= day.Unix()
}
