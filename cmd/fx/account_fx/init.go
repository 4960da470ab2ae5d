package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"librio/internal/repositories"
	"librio/internal/services"
	mem "librio/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	subRepo repositories.SubscriptionRepository,
	mailService services.IMailService,
	memcache mem.ResetTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, subRepo, mailService, memcache)
}
