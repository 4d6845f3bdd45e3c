package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// AttachGem handles POST /api/v1/products/:id/gems/:gemId
// Links a gem to a product. Attaching the same gem twice is rejected.
func AttachGem(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	gemID, ok := parseIDParam(c, "gemId")
	if !ok {
		return
	}

	db := config.GetDB()
	var link models.ProductGem
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("PRODUCT_NOT_FOUND", "Product not found")
			}
			return err
		}
		var gem models.Gem
		if err := tx.First(&gem, gemID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("GEM_NOT_FOUND", "Gem not found")
			}
			return err
		}

		link = models.ProductGem{ProductID: productID, GemID: gemID}
		return tx.Create(&link).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "GEM_ALREADY_ATTACHED", "This gem is already set into the product")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to attach gem")
		return
	}

	respondData(c, http.StatusCreated, link)
}

// DetachGem handles DELETE /api/v1/products/:id/gems/:gemId
func DetachGem(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	gemID, ok := parseIDParam(c, "gemId")
	if !ok {
		return
	}

	db := config.GetDB()
	result := db.Where("product_id = ? AND gem_id = ?", productID, gemID).
		Delete(&models.ProductGem{})
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to detach gem")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "LINK_NOT_FOUND", "Gem is not attached to this product")
		return
	}

	c.Status(http.StatusNoContent)
}

// AttachOffer handles POST /api/v1/products/:id/offers/:offerId
func AttachOffer(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offerID, ok := parseIDParam(c, "offerId")
	if !ok {
		return
	}

	db := config.GetDB()
	var link models.ProductOffer
	err := db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("PRODUCT_NOT_FOUND", "Product not found")
			}
			return err
		}
		var offer models.SeasonalOffer
		if err := tx.First(&offer, offerID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("OFFER_NOT_FOUND", "Offer not found")
			}
			return err
		}

		link = models.ProductOffer{ProductID: productID, SeasonalOfferID: offerID}
		return tx.Create(&link).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "OFFER_ALREADY_ATTACHED", "This offer already applies to the product")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to attach offer")
		return
	}

	respondData(c, http.StatusCreated, link)
}

// DetachOffer handles DELETE /api/v1/products/:id/offers/:offerId
func DetachOffer(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	offerID, ok := parseIDParam(c, "offerId")
	if !ok {
		return
	}

	db := config.GetDB()
	result := db.Where("product_id = ? AND seasonal_offer_id = ?", productID, offerID).
		Delete(&models.ProductOffer{})
	if result.Error != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to detach offer")
		return
	}
	if result.RowsAffected == 0 {
		respondError(c, http.StatusNotFound, "LINK_NOT_FOUND", "Offer is not attached to this product")
		return
	}

	c.Status(http.StatusNoContent)
}
