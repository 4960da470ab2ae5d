package services

import (
	"context"

	"github.com/google/uuid"

	"librio/internal/models/db_models"
	"librio/internal/repositories"
	"librio/pkg/utils"
)

type LibraryServiceInterface interface {
	AddToShelf(ctx context.Context, accountID, bookID uuid.UUID, status db_models.ReadingStatus) error
	UpdateShelfStatus(ctx context.Context, accountID, bookID uuid.UUID, status db_models.ReadingStatus) error
	RemoveFromShelf(ctx context.Context, accountID, bookID uuid.UUID) error
	GetShelf(ctx context.Context, accountID uuid.UUID) ([]db_models.ShelfItem, error)

	AddToWishlist(ctx context.Context, accountID, bookID uuid.UUID) error
	RemoveFromWishlist(ctx context.Context, accountID, bookID uuid.UUID) error
	GetWishlist(ctx context.Context, accountID uuid.UUID) ([]db_models.WishedBook, error)
}

type LibraryService struct {
	libraryRepo repositories.LibraryRepository
	bookRepo    repositories.BookRepository
}

func NewLibraryService(libraryRepo repositories.LibraryRepository, bookRepo repositories.BookRepository) LibraryServiceInterface {
	return &LibraryService{libraryRepo: libraryRepo, bookRepo: bookRepo}
}

func (s *LibraryService) AddToShelf(ctx context.Context, accountID, bookID uuid.UUID, status db_models.ReadingStatus) error {
	if status == "" {
		status = db_models.StatusWantToRead
	}
	if err := s.requireBook(ctx, bookID); err != nil {
		return err
	}
	return s.libraryRepo.AddShelfItem(ctx, &db_models.ShelfItem{
		AccountID: accountID,
		BookID:    bookID,
		Status:    status,
	})
}

func (s *LibraryService) UpdateShelfStatus(ctx context.Context, accountID, bookID uuid.UUID, status db_models.ReadingStatus) error {
	return s.libraryRepo.UpdateShelfItemStatus(ctx, accountID, bookID, status)
}

func (s *LibraryService) RemoveFromShelf(ctx context.Context, accountID, bookID uuid.UUID) error {
	return s.libraryRepo.RemoveShelfItem(ctx, accountID, bookID)
}

func (s *LibraryService) GetShelf(ctx context.Context, accountID uuid.UUID) ([]db_models.ShelfItem, error) {
	items, err := s.libraryRepo.ListShelf(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *LibraryService) AddToWishlist(ctx context.Context, accountID, bookID uuid.UUID) error {
	if err := s.requireBook(ctx, bookID); err != nil {
		return err
	}
	return s.libraryRepo.AddWishedBook(ctx, &db_models.WishedBook{
		AccountID: accountID,
		BookID:    bookID,
	})
}

func (s *LibraryService) RemoveFromWishlist(ctx context.Context, accountID, bookID uuid.UUID) error {
	return s.libraryRepo.RemoveWishedBook(ctx, accountID, bookID)
}

func (s *LibraryService) GetWishlist(ctx context.Context, accountID uuid.UUID) ([]db_models.WishedBook, error) {
	items, err := s.libraryRepo.ListWishlist(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return items, nil
}

func (s *LibraryService) requireBook(ctx context.Context, bookID uuid.UUID) error {
	book, err := s.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if book == nil {
		return utils.ErrBookNotFound
	}
	return nil
}
