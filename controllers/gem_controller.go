package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateGemRequest represents the request body for creating a gem
type CreateGemRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	KaratRate float64 `json:"karat_rate" binding:"required,gt=0"`
}

// UpdateGemRequest represents the request body for updating a gem
type UpdateGemRequest struct {
	Name      *string  `json:"name" binding:"omitempty,max=100"`
	KaratRate *float64 `json:"karat_rate" binding:"omitempty,gt=0"`
}

// ListGems handles GET /api/v1/gems
func ListGems(c *gin.Context) {
	db := config.GetDB()

	var gems []models.Gem
	if err := db.Order("name ASC").Find(&gems).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch gems")
		return
	}

	respondData(c, http.StatusOK, gems)
}

// GetGem handles GET /api/v1/gems/:id
func GetGem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var gem models.Gem
	if err := db.First(&gem, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "GEM_NOT_FOUND", "Gem not found")
		return
	}

	respondData(c, http.StatusOK, gem)
}

// CreateGem handles POST /api/v1/gems
func CreateGem(c *gin.Context) {
	var req CreateGemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	gem := models.Gem{Name: req.Name, KaratRate: req.KaratRate}

	db := config.GetDB()
	if err := db.Create(&gem).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create gem")
		return
	}

	respondData(c, http.StatusCreated, gem)
}

// UpdateGem handles PUT /api/v1/gems/:id
func UpdateGem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateGemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var gem models.Gem
	if err := db.First(&gem, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "GEM_NOT_FOUND", "Gem not found")
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.KaratRate != nil {
		updates["karat_rate"] = *req.KaratRate
	}

	if len(updates) == 0 {
		respondData(c, http.StatusOK, gem)
		return
	}

	if err := db.Model(&gem).Updates(updates).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update gem")
		return
	}

	respondData(c, http.StatusOK, gem)
}

// DeleteGem handles DELETE /api/v1/gems/:id
// Deletion is rejected while products are linked to the gem. Catalogue
// images tagged with the gem go with it.
func DeleteGem(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var gem models.Gem
		if err := tx.First(&gem, id).Error; err != nil {
			return err
		}

		var links int64
		if err := tx.Model(&models.ProductGem{}).Where("gem_id = ?", id).Count(&links).Error; err != nil {
			return err
		}
		if links > 0 {
			return utils.NewDataError("GEM_IN_USE", "Gem is set into existing products")
		}

		if err := tx.Where("gem_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&gem).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "GEM_NOT_FOUND", "Gem not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusConflict, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete gem")
		return
	}

	c.Status(http.StatusNoContent)
}
