package point_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"librio/internal/repositories"
	"librio/internal/services"
)

var Module = fx.Provide(
	providePointService, providePointTransactionRepo)

func providePointTransactionRepo(db *gorm.DB) repositories.PointTransactionRepository {
	return repositories.NewPointTransactionRepository(db)
}

func providePointService(
	uow repositories.UnitOfWork,
	accountRepo repositories.AccountRepository,
	txnRepo repositories.PointTransactionRepository,
) services.PointServiceInterface {
	return services.NewPointService(uow, accountRepo, txnRepo)
}
