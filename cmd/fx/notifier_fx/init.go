package notifier_fx

import (
	"os"

	"go.uber.org/fx"

	"librio/internal/services"
)

var Module = fx.Provide(
	provideMailNotifier, provideNotifier)

func provideMailNotifier(mailService services.IMailService) *services.MailNotifier {
	return services.NewMailNotifier(mailService, os.Getenv("APP_BASE_URL"))
}

func provideNotifier(notifier *services.MailNotifier) services.NotifierInterface {
	return notifier
}
