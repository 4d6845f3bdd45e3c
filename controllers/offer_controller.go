package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateOfferRequest represents the request body for creating a seasonal offer
type CreateOfferRequest struct {
	Slug     string    `json:"slug" binding:"required,max=100"`
	Title    string    `json:"title" binding:"required,max=150"`
	StartsAt time.Time `json:"starts_at" binding:"required"`
	EndsAt   time.Time `json:"ends_at" binding:"required,gtfield=StartsAt"`
}

// UpdateOfferRequest represents the request body for updating a seasonal offer
type UpdateOfferRequest struct {
	Slug     *string    `json:"slug" binding:"omitempty,max=100"`
	Title    *string    `json:"title" binding:"omitempty,max=150"`
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
}

// ListOffers handles GET /api/v1/offers
func ListOffers(c *gin.Context) {
	db := config.GetDB()

	var offers []models.SeasonalOffer
	if err := db.Order("starts_at DESC").Find(&offers).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch offers")
		return
	}

	respondData(c, http.StatusOK, offers)
}

// GetOffer handles GET /api/v1/offers/:id
func GetOffer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var offer models.SeasonalOffer
	if err := db.First(&offer, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "OFFER_NOT_FOUND", "Offer not found")
		return
	}

	respondData(c, http.StatusOK, offer)
}

// CreateOffer handles POST /api/v1/offers
func CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	offer := models.SeasonalOffer{
		Slug:     req.Slug,
		Title:    req.Title,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
	}

	db := config.GetDB()
	if err := db.Create(&offer).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_OFFER_SLUG", "An offer with this slug already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create offer")
		return
	}

	respondData(c, http.StatusCreated, offer)
}

// UpdateOffer handles PUT /api/v1/offers/:id
func UpdateOffer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var offer models.SeasonalOffer
	if err := db.First(&offer, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "OFFER_NOT_FOUND", "Offer not found")
		return
	}

	updates := make(map[string]interface{})
	if req.Slug != nil {
		updates["slug"] = *req.Slug
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}

	if len(updates) == 0 {
		respondData(c, http.StatusOK, offer)
		return
	}

	if err := db.Model(&offer).Updates(updates).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_OFFER_SLUG", "An offer with this slug already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update offer")
		return
	}

	respondData(c, http.StatusOK, offer)
}

// DeleteOffer handles DELETE /api/v1/offers/:id
// Product links to the offer go with it.
func DeleteOffer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var offer models.SeasonalOffer
		if err := tx.First(&offer, id).Error; err != nil {
			return err
		}

		if err := tx.Where("seasonal_offer_id = ?", id).Delete(&models.ProductOffer{}).Error; err != nil {
			return err
		}

		return tx.Delete(&offer).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "OFFER_NOT_FOUND", "Offer not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete offer")
		return
	}

	c.Status(http.StatusNoContent)
}
