package subscription_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"librio/internal/repositories"
	"librio/internal/services"
)

var Module = fx.Provide(
	provideSubscriptionService, provideSubscriptionRepo)

func provideSubscriptionRepo(db *gorm.DB) repositories.SubscriptionRepository {
	return repositories.NewSubscriptionRepository(db)
}

func provideSubscriptionService(
	uow repositories.UnitOfWork,
	subRepo repositories.SubscriptionRepository,
	notifier services.NotifierInterface,
) services.SubscriptionServiceInterface {
	return services.NewSubscriptionService(uow, subRepo, notifier, nil)
}
