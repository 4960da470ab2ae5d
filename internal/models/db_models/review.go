package db_models

import "github.com/google/uuid"

type Review struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Comment   string    `gorm:"type:text;not null"`
	Rating    int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`

	Account Account `gorm:"foreignKey:AccountID"`
	Book    Book    `gorm:"foreignKey:BookID"`
}
