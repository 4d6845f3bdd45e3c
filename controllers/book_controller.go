package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
)

// Books are a leftover from early scaffolding; the endpoints stay because
// deployment smoke tests still hit them.

// CreateBookRequest represents the request body for creating a book
type CreateBookRequest struct {
	Title  string  `json:"title" binding:"required,max=200"`
	Author string  `json:"author" binding:"required,max=150"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}

// UpdateBookRequest represents the request body for updating a book
type UpdateBookRequest struct {
	Title  *string  `json:"title" binding:"omitempty,max=200"`
	Author *string  `json:"author" binding:"omitempty,max=150"`
	Price  *float64 `json:"price" binding:"omitempty,gt=0"`
}

// ListBooks handles GET /api/v1/books
func ListBooks(c *gin.Context) {
	db := config.GetDB()

	var books []models.Book
	if err := db.Order("id ASC").Find(&books).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch books")
		return
	}

	respondData(c, http.StatusOK, books)
}

// GetBook handles GET /api/v1/books/:id
func GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var book models.Book
	if err := db.First(&book, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
		return
	}

	respondData(c, http.StatusOK, book)
}

// CreateBook handles POST /api/v1/books
func CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	book := models.Book{
		Title:  req.Title,
		Author: req.Author,
		Price:  req.Price,
	}

	db := config.GetDB()
	if err := db.Create(&book).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create book")
		return
	}

	respondData(c, http.StatusCreated, book)
}

// UpdateBook handles PUT /api/v1/books/:id
func UpdateBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var book models.Book
	if err := db.First(&book, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
		return
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Author != nil {
		updates["author"] = *req.Author
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	if len(updates) == 0 {
		respondData(c, http.StatusOK, book)
		return
	}

	if err := db.Model(&book).Updates(updates).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update book")
		return
	}

	respondData(c, http.StatusOK, book)
}

// DeleteBook handles DELETE /api/v1/books/:id
func DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var book models.Book
	if err := db.First(&book, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "Book not found")
		return
	}

	if err := db.Delete(&book).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete book")
		return
	}

	c.Status(http.StatusNoContent)
}
