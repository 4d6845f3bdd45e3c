package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateMetalRequest represents the request body for creating a metal
type CreateMetalRequest struct {
	Type   models.MetalType `json:"type" binding:"required,oneof=GOLD SILVER ROSE_GOLD"`
	Purity string           `json:"purity" binding:"required,max=20"`
}

// UpdateMetalRequest represents the request body for updating a metal
type UpdateMetalRequest struct {
	Type   *models.MetalType `json:"type" binding:"omitempty,oneof=GOLD SILVER ROSE_GOLD"`
	Purity *string           `json:"purity" binding:"omitempty,max=20"`
}

// ListMetals handles GET /api/v1/metals
func ListMetals(c *gin.Context) {
	db := config.GetDB()

	var metals []models.Metal
	if err := db.Order("type ASC, purity ASC").Find(&metals).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch metals")
		return
	}

	respondData(c, http.StatusOK, metals)
}

// GetMetal handles GET /api/v1/metals/:id
func GetMetal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var metal models.Metal
	if err := db.First(&metal, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "METAL_NOT_FOUND", "Metal not found")
		return
	}

	respondData(c, http.StatusOK, metal)
}

// CreateMetal handles POST /api/v1/metals
func CreateMetal(c *gin.Context) {
	var req CreateMetalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	metal := models.Metal{Type: req.Type, Purity: req.Purity}

	db := config.GetDB()
	if err := db.Create(&metal).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_METAL", "This metal/purity combination already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create metal")
		return
	}

	respondData(c, http.StatusCreated, metal)
}

// UpdateMetal handles PUT /api/v1/metals/:id
func UpdateMetal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateMetalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var metal models.Metal
	if err := db.First(&metal, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "METAL_NOT_FOUND", "Metal not found")
		return
	}

	updates := make(map[string]interface{})
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Purity != nil {
		updates["purity"] = *req.Purity
	}

	if len(updates) == 0 {
		respondData(c, http.StatusOK, metal)
		return
	}

	if err := db.Model(&metal).Updates(updates).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_METAL", "This metal/purity combination already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update metal")
		return
	}

	respondData(c, http.StatusOK, metal)
}

// DeleteMetal handles DELETE /api/v1/metals/:id
// Deletion is rejected while products or material rates reference the
// metal; custom designs merely preferring it get the reference nulled.
func DeleteMetal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var metal models.Metal
		if err := tx.First(&metal, id).Error; err != nil {
			return err
		}

		var products int64
		if err := tx.Model(&models.Product{}).Where("metal_id = ?", id).Count(&products).Error; err != nil {
			return err
		}
		if products > 0 {
			return utils.NewDataError("METAL_IN_USE", "Metal is referenced by existing products")
		}

		var rates int64
		if err := tx.Model(&models.MaterialRate{}).Where("metal_id = ?", id).Count(&rates).Error; err != nil {
			return err
		}
		if rates > 0 {
			return utils.NewDataError("METAL_IN_USE", "Metal is referenced by existing material rates")
		}

		if err := tx.Model(&models.CustomDesign{}).Where("preferred_metal_id = ?", id).
			Update("preferred_metal_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&metal).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "METAL_NOT_FOUND", "Metal not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusConflict, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete metal")
		return
	}

	c.Status(http.StatusNoContent)
}
