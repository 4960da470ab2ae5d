package book_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"librio/internal/repositories"
	"librio/internal/services"
)

var Module = fx.Provide(
	provideBookService, provideBookRepo)

func provideBookRepo(db *gorm.DB) repositories.BookRepository {
	return repositories.NewBookRepository(db)
}

func provideBookService(bookRepo repositories.BookRepository) services.BookServiceInterface {
	return services.NewBookService(bookRepo)
}
