package request_models

type TopUpRequest struct {
	// Points to buy. 1 point = 1 VND at checkout.
	Points int64 `json:"points" binding:"required,min=1000"`
}
