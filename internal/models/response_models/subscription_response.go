package response_models

import "github.com/google/uuid"

type SubscriptionResponse struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"account_id"`
	SubDate   int64     `json:"sub_date"`
	ExpDate   int64     `json:"exp_date"`
	Canceled  bool      `json:"canceled"`
	IsActive  bool      `json:"is_active"`
}

type PointBalanceResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	Points    int64     `json:"points"`
}

type CreateCheckoutResponse struct {
	OrderCode    int64  `json:"order_code"`
	Amount       int64  `json:"amount"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider"`
}
