package db_models

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:user"`

	// Point balance used to pay the subscription. Never negative;
	// every change goes through the ledger inside a transaction.
	Points int64 `gorm:"not null;default:0;check:points >= 0"`

	Reviews    []Review     `gorm:"foreignKey:AccountID"`
	ShelfItems []ShelfItem  `gorm:"foreignKey:AccountID"`
	Wishlist   []WishedBook `gorm:"foreignKey:AccountID"`
}
