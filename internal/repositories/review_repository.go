package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"librio/internal/models/db_models"
)

type ReviewRepositoryInterface interface {
	CreateReview(ctx context.Context, review *db_models.Review) error
	ListByBook(ctx context.Context, bookID uuid.UUID, page, pageSize int) ([]db_models.Review, error)
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, review *db_models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) ListByBook(ctx context.Context, bookID uuid.UUID, page, pageSize int) ([]db_models.Review, error) {
	var reviews []db_models.Review
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("book_id = ?", bookID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}
