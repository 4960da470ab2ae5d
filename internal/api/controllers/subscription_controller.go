package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"librio/internal/services"
	"librio/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// GetSubscription godoc
// @Summary Get the current user's subscription
// @Description Returns the subscription record, or null when the user never subscribed
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription [get]
func (s *SubscriptionController) GetSubscription(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	sub, err := s.subscriptionService.GetSubscription(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription fetched successfully")
}

// Subscribe godoc
// @Summary Subscribe or renew the monthly membership
// @Description Charges the fixed point cost and opens a one-month period
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 402 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/subscribe [post]
func (s *SubscriptionController) Subscribe(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	if err := s.subscriptionService.Subscribe(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscribed successfully")
}

// Cancel godoc
// @Summary Cancel the membership
// @Description The paid period keeps running until its expiry date; it will not renew
// @Tags Subscription
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/cancel [post]
func (s *SubscriptionController) Cancel(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	if err := s.subscriptionService.Cancel(c.Request.Context(), accountID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Subscription canceled")
}
