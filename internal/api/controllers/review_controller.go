package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"librio/internal/models/request_models"
	"librio/internal/services"
	"librio/pkg/utils"
)

type ReviewController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewController(reviewService services.ReviewServiceInterface) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// AddReview godoc
// @Summary Post a review for a book
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param request body request_models.CreateReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /books/{id}/reviews [post]
func (r *ReviewController) AddReview(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid book id")
		return
	}

	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := r.reviewService.AddReview(c.Request.Context(), accountID, bookID, req.Comment, req.Rating); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Review posted successfully")
}

// GetReviews godoc
// @Summary List reviews for a book
// @Tags Reviews
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} utils.APIResponse
// @Router /books/{id}/reviews [get]
func (r *ReviewController) GetReviews(c *gin.Context) {
	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid book id")
		return
	}

	page, pageSize := pagingParams(c)

	reviews, err := r.reviewService.GetReviewsForBook(c.Request.Context(), bookID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
