package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"librio/internal/models/request_models"
	"librio/internal/services"
	"librio/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
	pointService   services.PointServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface, pointService services.PointServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		pointService:   pointService,
	}
}

// CreateTopUpCheckout godoc
// @Summary Create a checkout link for buying reading points
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.TopUpRequest true "Top-up payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /points/topup [post]
func (p *PaymentController) CreateTopUpCheckout(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	var req request_models.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	checkout, err := p.paymentService.CreateTopUpCheckout(c.Request.Context(), accountID, req.Points)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, checkout, "Checkout URL created successfully")
}

// GetBalance godoc
// @Summary Get the current point balance
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /points/balance [get]
func (p *PaymentController) GetBalance(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	balance, err := p.pointService.GetBalance(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, balance, "Balance fetched successfully")
}

// GetHistory godoc
// @Summary List point transactions
// @Tags Payments
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /points/history [get]
func (p *PaymentController) GetHistory(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	page, pageSize := pagingParams(c)

	history, err := p.pointService.GetHistory(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, history, "History fetched successfully")
}

// HandleWebhook receives payment confirmations from payOS.
func (p *PaymentController) HandleWebhook(c *gin.Context) {
	p.paymentService.HandleWebhook(c)
}
