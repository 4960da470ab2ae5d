package db_models

import "github.com/google/uuid"

type ReadingStatus string

const (
	StatusWantToRead ReadingStatus = "want_to_read"
	StatusReading    ReadingStatus = "reading"
	StatusFinished   ReadingStatus = "finished"
)

// ShelfItem is one book on a user's bookshelf. One row per account+book.
type ShelfItem struct {
	BaseModel
	AccountID uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_shelf_account_book"`
	BookID    uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_shelf_account_book"`
	Status    ReadingStatus `gorm:"type:varchar(20);default:want_to_read"`

	Account Account `gorm:"foreignKey:AccountID"`
	Book    Book    `gorm:"foreignKey:BookID"`
}

type WishedBook struct {
	BaseModel
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wish_account_book"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_wish_account_book"`

	Account Account `gorm:"foreignKey:AccountID"`
	Book    Book    `gorm:"foreignKey:BookID"`
}
