package reminder_fx

import (
	"go.uber.org/fx"

	"librio/internal/repositories"
	"librio/internal/services"
)

var Module = fx.Provide(provideReminderService)

func provideReminderService(
	subRepo repositories.SubscriptionRepository,
	notifier services.NotifierInterface,
) *services.ReminderService {
	return services.NewReminderService(subRepo, notifier, nil)
}
