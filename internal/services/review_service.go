package services

import (
	"context"

	"github.com/google/uuid"

	"librio/internal/models/db_models"
	"librio/internal/models/response_models"
	"librio/internal/repositories"
	"librio/pkg/utils"
)

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, accountID, bookID uuid.UUID, comment string, rating int) error
	GetReviewsForBook(ctx context.Context, bookID uuid.UUID, page, pageSize int) ([]response_models.ReviewResponse, error)
}

type ReviewService struct {
	reviewRepo repositories.ReviewRepositoryInterface
	bookRepo   repositories.BookRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepositoryInterface, bookRepo repositories.BookRepository) ReviewServiceInterface {
	return &ReviewService{reviewRepo: reviewRepo, bookRepo: bookRepo}
}

func (s *ReviewService) AddReview(ctx context.Context, accountID, bookID uuid.UUID, comment string, rating int) error {
	if rating < 1 || rating > 5 {
		return utils.ErrInvalidRating
	}

	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if book == nil {
		return utils.ErrBookNotFound
	}

	review := &db_models.Review{
		AccountID: accountID,
		BookID:    bookID,
		Comment:   comment,
		Rating:    rating,
	}
	if err := s.reviewRepo.CreateReview(ctx, review); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ReviewService) GetReviewsForBook(ctx context.Context, bookID uuid.UUID, page, pageSize int) ([]response_models.ReviewResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByBook(ctx, bookID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		r := &reviews[i]
		result = append(result, response_models.ReviewResponse{
			ID:      r.ID,
			BookID:  r.BookID,
			Author:  r.Account.Name,
			Comment: r.Comment,
			Rating:  r.Rating,
			Posted:  r.CreatedAt,
		})
	}
	return result, nil
}
