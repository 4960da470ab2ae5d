package recommendation_fx

import (
	"go.uber.org/fx"

	"librio/internal/repositories"
	"librio/internal/services"
	"librio/pkg/utils"
)

var Module = fx.Provide(
	provideRecommendationService, provideChatClient)

func provideChatClient() utils.ChatClientInterface {
	return utils.NewOpenAIChatClient()
}

func provideRecommendationService(
	libraryRepo repositories.LibraryRepository,
	bookRepo repositories.BookRepository,
	chat utils.ChatClientInterface,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(libraryRepo, bookRepo, chat)
}
