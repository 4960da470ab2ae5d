package library_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"librio/internal/repositories"
	"librio/internal/services"
)

var Module = fx.Provide(
	provideLibraryService, provideLibraryRepo)

func provideLibraryRepo(db *gorm.DB) repositories.LibraryRepository {
	return repositories.NewLibraryRepository(db)
}

func provideLibraryService(
	libraryRepo repositories.LibraryRepository,
	bookRepo repositories.BookRepository,
) services.LibraryServiceInterface {
	return services.NewLibraryService(libraryRepo, bookRepo)
}
