package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"librio/internal/models/db_models"
	"librio/pkg/utils"
)

type LibraryRepository interface {
	AddShelfItem(ctx context.Context, item *db_models.ShelfItem) error
	UpdateShelfItemStatus(ctx context.Context, accountID, bookID uuid.UUID, status db_models.ReadingStatus) error
	RemoveShelfItem(ctx context.Context, accountID, bookID uuid.UUID) error
	ListShelf(ctx context.Context, accountID uuid.UUID) ([]db_models.ShelfItem, error)

	AddWishedBook(ctx context.Context, item *db_models.WishedBook) error
	RemoveWishedBook(ctx context.Context, accountID, bookID uuid.UUID) error
	ListWishlist(ctx context.Context, accountID uuid.UUID) ([]db_models.WishedBook, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (l *libraryRepository) AddShelfItem(ctx context.Context, item *db_models.ShelfItem) error {
	err := l.db.WithContext(ctx).Create(item).Error
	if isUniqueViolation(err) {
		return utils.ErrAlreadyShelved
	}
	return err
}

func (l *libraryRepository) UpdateShelfItemStatus(ctx context.Context, accountID, bookID uuid.UUID, status db_models.ReadingStatus) error {
	res := l.db.WithContext(ctx).
		Model(&db_models.ShelfItem{}).
		Where("account_id = ? AND book_id = ?", accountID, bookID).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrBookNotFound
	}
	return nil
}

func (l *libraryRepository) RemoveShelfItem(ctx context.Context, accountID, bookID uuid.UUID) error {
	return l.db.WithContext(ctx).
		Where("account_id = ? AND book_id = ?", accountID, bookID).
		Delete(&db_models.ShelfItem{}).Error
}

func (l *libraryRepository) ListShelf(ctx context.Context, accountID uuid.UUID) ([]db_models.ShelfItem, error) {
	var items []db_models.ShelfItem
	err := l.db.WithContext(ctx).
		Preload("Book").
		Where("account_id = ?", accountID).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

func (l *libraryRepository) AddWishedBook(ctx context.Context, item *db_models.WishedBook) error {
	err := l.db.WithContext(ctx).Create(item).Error
	if isUniqueViolation(err) {
		return utils.ErrAlreadyWished
	}
	return err
}

func (l *libraryRepository) RemoveWishedBook(ctx context.Context, accountID, bookID uuid.UUID) error {
	return l.db.WithContext(ctx).
		Where("account_id = ? AND book_id = ?", accountID, bookID).
		Delete(&db_models.WishedBook{}).Error
}

func (l *libraryRepository) ListWishlist(ctx context.Context, accountID uuid.UUID) ([]db_models.WishedBook, error) {
	var items []db_models.WishedBook
	err := l.db.WithContext(ctx).
		Preload("Book").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
