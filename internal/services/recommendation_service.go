package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"librio/internal/models/db_models"
	"librio/internal/models/response_models"
	"librio/internal/repositories"
	"librio/pkg/utils"
)

type RecommendationServiceInterface interface {
	RecommendForAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]response_models.BookResponse, error)
}

// RecommendationService picks catalog books similar to what the user has
// shelved, using a chat completion to rank candidates. Model failures
// degrade to the newest catalog entries instead of erroring.
type RecommendationService struct {
	libraryRepo repositories.LibraryRepository
	bookRepo    repositories.BookRepository
	chat        utils.ChatClientInterface
}

func NewRecommendationService(
	libraryRepo repositories.LibraryRepository,
	bookRepo repositories.BookRepository,
	chat utils.ChatClientInterface,
) RecommendationServiceInterface {
	return &RecommendationService{
		libraryRepo: libraryRepo,
		bookRepo:    bookRepo,
		chat:        chat,
	}
}

const candidatePoolSize = 50

func (s *RecommendationService) RecommendForAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]response_models.BookResponse, error) {
	if limit < 1 || limit > 20 {
		limit = 5
	}

	shelf, err := s.libraryRepo.ListShelf(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	candidates, err := s.bookRepo.ListLatest(ctx, candidatePoolSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Exclude books already on the shelf.
	shelved := make(map[uuid.UUID]bool, len(shelf))
	for i := range shelf {
		shelved[shelf[i].BookID] = true
	}
	pool := candidates[:0]
	for i := range candidates {
		if !shelved[candidates[i].ID] {
			pool = append(pool, candidates[i])
		}
	}

	if len(shelf) == 0 || len(pool) == 0 {
		return toBookResponses(truncateBooks(pool, limit)), nil
	}

	picked := s.rankWithModel(ctx, shelf, pool, limit)
	if len(picked) == 0 {
		picked = truncateBooks(pool, limit)
	}
	return toBookResponses(picked), nil
}

func (s *RecommendationService) rankWithModel(ctx context.Context, shelf []db_models.ShelfItem, pool []db_models.Book, limit int) []db_models.Book {
	var sb strings.Builder
	sb.WriteString("A reader has these books on their shelf:\n")
	for i := range shelf {
		if shelf[i].Book.Title != "" {
			fmt.Fprintf(&sb, "- %s by %s\n", shelf[i].Book.Title, shelf[i].Book.Author)
		}
	}
	sb.WriteString("\nFrom the following candidates, pick the best matches.\n")
	for i := range pool {
		fmt.Fprintf(&sb, "- %s | %s by %s (%s)\n", pool[i].ISBN, pool[i].Title, pool[i].Author, pool[i].Category)
	}
	fmt.Fprintf(&sb, "\nRespond with up to %d ISBNs from the candidate list, comma separated, nothing else.", limit)

	answer, err := s.chat.Complete(ctx, sb.String())
	if err != nil {
		log.Printf("recommendations: model call failed: %v", err)
		return nil
	}

	byISBN := make(map[string]db_models.Book, len(pool))
	for i := range pool {
		byISBN[pool[i].ISBN] = pool[i]
	}

	var picked []db_models.Book
	for _, part := range strings.Split(answer, ",") {
		isbn := strings.TrimSpace(part)
		if book, ok := byISBN[isbn]; ok {
			picked = append(picked, book)
			if len(picked) == limit {
				break
			}
		}
	}
	return picked
}

func truncateBooks(books []db_models.Book, limit int) []db_models.Book {
	if len(books) > limit {
		return books[:limit]
	}
	return books
}
