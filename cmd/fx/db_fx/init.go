package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"librio/internal/infra"
	"librio/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideUnitOfWork)

func provideDB() *gorm.DB {
	return infra.InitPostgresql()
}

func provideUnitOfWork(db *gorm.DB) repositories.UnitOfWork {
	return repositories.NewUnitOfWork(db)
}
