package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"librio/internal/models/db_models"
)

type BookRepository interface {
	Insert(ctx context.Context, book *db_models.Book) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Book, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Book, error)
	Search(ctx context.Context, query string, page, pageSize int) ([]db_models.Book, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Book, error)
	ListLatest(ctx context.Context, limit int) ([]db_models.Book, error)
}

type bookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) BookRepository {
	return &bookRepository{db: db}
}

func (b *bookRepository) Insert(ctx context.Context, book *db_models.Book) error {
	return b.db.WithContext(ctx).Create(book).Error
}

func (b *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Book, error) {
	var book db_models.Book
	err := b.db.WithContext(ctx).First(&book, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &book, nil
}

func (b *bookRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Book, error) {
	var books []db_models.Book
	err := b.db.WithContext(ctx).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&books).Error
	return books, err
}

func (b *bookRepository) Search(ctx context.Context, query string, page, pageSize int) ([]db_models.Book, error) {
	var books []db_models.Book
	pattern := "%" + query + "%"
	err := b.db.WithContext(ctx).
		Where("title ILIKE ? OR author ILIKE ?", pattern, pattern).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("title ASC").
		Find(&books).Error
	return books, err
}

func (b *bookRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]db_models.Book, error) {
	var books []db_models.Book
	err := b.db.WithContext(ctx).Where("id IN ?", ids).Find(&books).Error
	return books, err
}

func (b *bookRepository) ListLatest(ctx context.Context, limit int) ([]db_models.Book, error) {
	var books []db_models.Book
	err := b.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&books).Error
	return books, err
}
