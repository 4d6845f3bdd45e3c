package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required"`
	MetalID     uint    `json:"metal_id" binding:"required"`
	Name        string  `json:"name" binding:"required,max=150"`
	Size        *string `json:"size" binding:"omitempty,max=30"`
	Weight      float64 `json:"weight" binding:"required,gt=0"`
	HasGemstone bool    `json:"has_gemstone"`
	Cost        float64 `json:"cost" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"omitempty,gte=0"`
	Description string  `json:"description"`
}

// UpdateProductRequest represents the request body for updating a product
type UpdateProductRequest struct {
	CategoryID  *uint    `json:"category_id"`
	MetalID     *uint    `json:"metal_id"`
	Name        *string  `json:"name" binding:"omitempty,max=150"`
	Size        *string  `json:"size" binding:"omitempty,max=30"`
	Weight      *float64 `json:"weight" binding:"omitempty,gt=0"`
	HasGemstone *bool    `json:"has_gemstone"`
	Cost        *float64 `json:"cost" binding:"omitempty,gt=0"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Description *string  `json:"description"`
}

// ListProducts handles GET /api/v1/products
// Supports filtering by category_id, metal_id and has_gemstone.
func ListProducts(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Category").Preload("Metal").Preload("Images").Preload("Gems")
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_FILTER", "category_id must be a positive integer")
			return
		}
		query = query.Where("category_id = ?", id)
	}
	if raw := c.Query("metal_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_FILTER", "metal_id must be a positive integer")
			return
		}
		query = query.Where("metal_id = ?", id)
	}
	if raw := c.Query("has_gemstone"); raw != "" {
		flag, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_FILTER", "has_gemstone must be a boolean")
			return
		}
		query = query.Where("has_gemstone = ?", flag)
	}

	var products []models.Product
	if err := query.Order("id ASC").Find(&products).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch products")
		return
	}

	respondData(c, http.StatusOK, products)
}

// GetProduct handles GET /api/v1/products/:id
func GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var product models.Product
	if err := db.Preload("Category").Preload("Metal").Preload("Images").
		Preload("Gems").Preload("Offers").First(&product, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}

	respondData(c, http.StatusOK, product)
}

// CreateProduct handles POST /api/v1/products
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var product models.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, req.CategoryID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("CATEGORY_NOT_FOUND", "Referenced category does not exist")
			}
			return err
		}
		var metal models.Metal
		if err := tx.First(&metal, req.MetalID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("METAL_NOT_FOUND", "Referenced metal does not exist")
			}
			return err
		}

		product = models.Product{
			CategoryID:  req.CategoryID,
			MetalID:     req.MetalID,
			Name:        req.Name,
			Size:        req.Size,
			Weight:      req.Weight,
			HasGemstone: req.HasGemstone,
			Cost:        req.Cost,
			Quantity:    req.Quantity,
			Description: req.Description,
		}
		return tx.Create(&product).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product")
		return
	}

	if err := db.Preload("Category").Preload("Metal").First(&product, product.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load product details")
		return
	}

	respondData(c, http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/v1/products/:id
func UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var product models.Product
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.CategoryID != nil {
			var category models.Category
			if err := tx.First(&category, *req.CategoryID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("CATEGORY_NOT_FOUND", "Referenced category does not exist")
				}
				return err
			}
			updates["category_id"] = *req.CategoryID
		}
		if req.MetalID != nil {
			var metal models.Metal
			if err := tx.First(&metal, *req.MetalID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("METAL_NOT_FOUND", "Referenced metal does not exist")
				}
				return err
			}
			updates["metal_id"] = *req.MetalID
		}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Size != nil {
			updates["size"] = *req.Size
		}
		if req.Weight != nil {
			updates["weight"] = *req.Weight
		}
		if req.HasGemstone != nil {
			updates["has_gemstone"] = *req.HasGemstone
		}
		if req.Cost != nil {
			updates["cost"] = *req.Cost
		}
		if req.Quantity != nil {
			updates["quantity"] = *req.Quantity
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&product).Updates(updates).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product")
		return
	}

	if err := db.Preload("Category").Preload("Metal").Preload("Images").
		Preload("Gems").First(&product, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load product details")
		return
	}

	respondData(c, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/:id
// Catalogue images, gem links and offer links go with the product.
func DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			return err
		}

		if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductGem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductOffer{}).Error; err != nil {
			return err
		}

		return tx.Delete(&product).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}
