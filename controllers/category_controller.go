package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateCategoryRequest represents the request body for creating a category
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateCategoryRequest represents the request body for updating a category
type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ListCategories handles GET /api/v1/categories
func ListCategories(c *gin.Context) {
	db := config.GetDB()

	var categories []models.Category
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch categories")
		return
	}

	respondData(c, http.StatusOK, categories)
}

// GetCategory handles GET /api/v1/categories/:id
func GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
		return
	}

	respondData(c, http.StatusOK, category)
}

// CreateCategory handles POST /api/v1/categories
func CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	category := models.Category{Name: req.Name}

	db := config.GetDB()
	if err := db.Create(&category).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_CATEGORY", "A category with this name already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create category")
		return
	}

	respondData(c, http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/v1/categories/:id
func UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
		return
	}

	if err := db.Model(&category).Update("name", req.Name).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_CATEGORY", "A category with this name already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update category")
		return
	}

	respondData(c, http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// Deletion is rejected while products still reference the category.
func DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}

		var dependents int64
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return utils.NewDataError("CATEGORY_IN_USE", "Category is referenced by existing products")
		}

		return tx.Delete(&category).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "CATEGORY_NOT_FOUND", "Category not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusConflict, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete category")
		return
	}

	c.Status(http.StatusNoContent)
}
