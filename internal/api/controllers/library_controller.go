package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"librio/internal/models/db_models"
	"librio/internal/models/request_models"
	"librio/internal/services"
	"librio/pkg/utils"
)

type LibraryController struct {
	libraryService services.LibraryServiceInterface
}

func NewLibraryController(libraryService services.LibraryServiceInterface) *LibraryController {
	return &LibraryController{libraryService: libraryService}
}

// AddToShelf godoc
// @Summary Add a book to the bookshelf
// @Tags Library
// @Accept json
// @Produce json
// @Param request body request_models.AddShelfItemRequest true "Shelf payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /library/shelf [post]
func (l *LibraryController) AddToShelf(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	var req request_models.AddShelfItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := l.libraryService.AddToShelf(c.Request.Context(), accountID, req.BookID, db_models.ReadingStatus(req.Status)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Book added to shelf")
}

// UpdateShelfItem godoc
// @Summary Update reading status of a shelved book
// @Tags Library
// @Accept json
// @Produce json
// @Param bookId path string true "Book ID"
// @Param request body request_models.UpdateShelfItemRequest true "Status payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /library/shelf/{bookId} [patch]
func (l *LibraryController) UpdateShelfItem(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid book id")
		return
	}

	var req request_models.UpdateShelfItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := l.libraryService.UpdateShelfStatus(c.Request.Context(), accountID, bookID, db_models.ReadingStatus(req.Status)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Shelf updated")
}

// RemoveFromShelf godoc
// @Summary Remove a book from the bookshelf
// @Tags Library
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /library/shelf/{bookId} [delete]
func (l *LibraryController) RemoveFromShelf(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid book id")
		return
	}

	if err := l.libraryService.RemoveFromShelf(c.Request.Context(), accountID, bookID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Book removed from shelf")
}

// GetShelf godoc
// @Summary List the user's bookshelf
// @Tags Library
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /library/shelf [get]
func (l *LibraryController) GetShelf(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	items, err := l.libraryService.GetShelf(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Shelf fetched successfully")
}

// AddToWishlist godoc
// @Summary Add a book to the wishlist
// @Tags Library
// @Accept json
// @Produce json
// @Param request body request_models.AddWishedBookRequest true "Wishlist payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /library/wishlist [post]
func (l *LibraryController) AddToWishlist(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	var req request_models.AddWishedBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := l.libraryService.AddToWishlist(c.Request.Context(), accountID, req.BookID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Book added to wishlist")
}

// RemoveFromWishlist godoc
// @Summary Remove a book from the wishlist
// @Tags Library
// @Produce json
// @Param bookId path string true "Book ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /library/wishlist/{bookId} [delete]
func (l *LibraryController) RemoveFromWishlist(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	bookID, err := uuid.Parse(c.Param("bookId"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid book id")
		return
	}

	if err := l.libraryService.RemoveFromWishlist(c.Request.Context(), accountID, bookID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Book removed from wishlist")
}

// GetWishlist godoc
// @Summary List the user's wishlist
// @Tags Library
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /library/wishlist [get]
func (l *LibraryController) GetWishlist(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "user_id is required")
		return
	}

	items, err := l.libraryService.GetWishlist(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, items, "Wishlist fetched successfully")
}
