package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"librio/internal/models/db_models"
	"librio/internal/models/response_models"
	"librio/internal/repositories"
	"librio/pkg/utils"
)

type BookServiceInterface interface {
	GetBookByID(ctx context.Context, id uuid.UUID) (*response_models.BookResponse, error)
	ListBooks(ctx context.Context, page, pageSize int) ([]response_models.BookResponse, error)
	SearchBooks(ctx context.Context, query string, page, pageSize int) ([]response_models.BookResponse, error)
}

type BookService struct {
	bookRepo repositories.BookRepository
}

func NewBookService(bookRepo repositories.BookRepository) BookServiceInterface {
	return &BookService{bookRepo: bookRepo}
}

func (b *BookService) GetBookByID(ctx context.Context, id uuid.UUID) (*response_models.BookResponse, error) {
	book, err := b.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if book == nil {
		return nil, utils.ErrBookNotFound
	}
	resp := toBookResponse(book)
	return &resp, nil
}

func (b *BookService) ListBooks(ctx context.Context, page, pageSize int) ([]response_models.BookResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	books, err := b.bookRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookResponses(books), nil
}

func (b *BookService) SearchBooks(ctx context.Context, query string, page, pageSize int) ([]response_models.BookResponse, error) {
	if err := validatePaging(page, pageSize); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []response_models.BookResponse{}, nil
	}
	books, err := b.bookRepo.Search(ctx, query, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return toBookResponses(books), nil
}

func validatePaging(page, pageSize int) error {
	if page < 1 {
		return utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return utils.ErrInvalidPageSize
	}
	return nil
}

func toBookResponse(book *db_models.Book) response_models.BookResponse {
	return response_models.BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Publisher:   book.Publisher,
		ISBN:        book.ISBN,
		Category:    book.Category,
		Description: book.Description,
		CoverImage:  book.CoverImage,
	}
}

func toBookResponses(books []db_models.Book) []response_models.BookResponse {
	result := make([]response_models.BookResponse, 0, len(books))
	for i := range books {
		result = append(result, toBookResponse(&books[i]))
	}
	return result
}
