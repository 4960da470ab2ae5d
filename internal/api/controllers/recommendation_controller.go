package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"librio/internal/services"
	"librio/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{recommendationService: recommendationService}
}

// GetRecommendations godoc
// @Summary Recommend books based on the user's shelf
// @Tags Books
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /books/recommendations [get]
func (r *RecommendationController) GetRecommendations(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	books, err := r.recommendationService.RecommendForAccount(c.Request.Context(), accountID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, books, "Recommendations fetched successfully")
}
