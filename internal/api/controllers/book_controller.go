package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"librio/internal/services"
	"librio/pkg/utils"
)

type BookController struct {
	bookService services.BookServiceInterface
}

func NewBookController(bookService services.BookServiceInterface) *BookController {
	return &BookController{bookService: bookService}
}

// ListBooks godoc
// @Summary List catalog books
// @Tags Books
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /books [get]
func (b *BookController) ListBooks(c *gin.Context) {
	page, pageSize := pagingParams(c)

	books, err := b.bookService.ListBooks(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, books, "Books fetched successfully")
}

// SearchBooks godoc
// @Summary Search books by title or author
// @Tags Books
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} utils.APIResponse
// @Router /books/search [get]
func (b *BookController) SearchBooks(c *gin.Context) {
	page, pageSize := pagingParams(c)

	books, err := b.bookService.SearchBooks(c.Request.Context(), c.Query("q"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, books, "Books fetched successfully")
}

// GetBookById godoc
// @Summary Get a single book
// @Tags Books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /books/{id} [get]
func (b *BookController) GetBookById(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid book id")
		return
	}

	book, err := b.bookService.GetBookByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, book, "Book fetched successfully")
}

func pagingParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}
