package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// AddProductImageRequest represents the request body for attaching an
// image to a product. The URL usually comes from the uploads endpoint.
type AddProductImageRequest struct {
	URL     string `json:"url" binding:"required,max=500"`
	AltText string `json:"alt_text" binding:"omitempty,max=255"`
	GemID   *uint  `json:"gem_id"`
}

// ListProductImages handles GET /api/v1/products/:id/images
func ListProductImages(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var product models.Product
	if err := db.First(&product, productID).Error; err != nil {
		respondError(c, http.StatusNotFound, "PRODUCT_NOT_FOUND", "Product not found")
		return
	}

	var images []models.ProductImage
	if err := db.Where("product_id = ?", productID).Preload("Gem").
		Order("id ASC").Find(&images).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch images")
		return
	}

	respondData(c, http.StatusOK, images)
}

// AddProductImage handles POST /api/v1/products/:id/images
func AddProductImage(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddProductImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var image models.ProductImage
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("PRODUCT_NOT_FOUND", "Product not found")
			}
			return err
		}
		if req.GemID != nil {
			var gem models.Gem
			if err := tx.First(&gem, *req.GemID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("GEM_NOT_FOUND", "Referenced gem does not exist")
				}
				return err
			}
		}

		image = models.ProductImage{
			ProductID: productID,
			URL:       req.URL,
			AltText:   req.AltText,
			GemID:     req.GemID,
		}
		return tx.Create(&image).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_IMAGE_URL", "An image with this URL already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to add image")
		return
	}

	respondData(c, http.StatusCreated, image)
}

// DeleteProductImage handles DELETE /api/v1/products/:id/images/:imageId
func DeleteProductImage(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		return
	}

	db := config.GetDB()
	var image models.ProductImage
	if err := db.Where("product_id = ?", productID).First(&image, imageID).Error; err != nil {
		respondError(c, http.StatusNotFound, "IMAGE_NOT_FOUND", "Image not found for this product")
		return
	}

	if err := db.Delete(&image).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete image")
		return
	}

	c.Status(http.StatusNoContent)
}
