package payment_service_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"librio/internal/repositories"
	"librio/internal/services"
)

var Module = fx.Provide(providePaymentService)

func providePaymentService(
	txnRepo repositories.PointTransactionRepository,
	pointService services.PointServiceInterface,
) services.PaymentServiceInterface {
	cfg := services.PayOSConfig{
		ClientID:     os.Getenv("PAYOS_CLIENT_ID"),
		ApiKey:       os.Getenv("PAYOS_API_KEY"),
		ChecksumKey:  os.Getenv("PAYOS_CHECKSUM_KEY"),
		ProviderName: "payos",
	}

	instance, err := services.NewPaymentService(txnRepo, pointService, cfg)
	if err != nil {
		log.Printf("Error initializing PaymentService: %v", err)
	}

	return instance
}
