package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// rateDateLayout is the wire format for material rate dates
const rateDateLayout = "2006-01-02"

// CreateMaterialRateRequest represents the request body for recording a rate
type CreateMaterialRateRequest struct {
	MetalID     uint    `json:"metal_id" binding:"required"`
	RatePerGram float64 `json:"rate_per_gram" binding:"required,gt=0"`
	RateDate    string  `json:"rate_date" binding:"required,datetime=2006-01-02"`
	UpdatedByID *uint   `json:"updated_by_id"`
}

// UpdateMaterialRateRequest represents the request body for correcting a rate
type UpdateMaterialRateRequest struct {
	RatePerGram *float64 `json:"rate_per_gram" binding:"omitempty,gt=0"`
	UpdatedByID *uint    `json:"updated_by_id"`
}

// ListMaterialRates handles GET /api/v1/material-rates
// Supports filtering by metal_id.
func ListMaterialRates(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Metal").Preload("UpdatedBy")
	if raw := c.Query("metal_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_FILTER", "metal_id must be a positive integer")
			return
		}
		query = query.Where("metal_id = ?", id)
	}

	var rates []models.MaterialRate
	if err := query.Order("rate_date DESC").Find(&rates).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch material rates")
		return
	}

	respondData(c, http.StatusOK, rates)
}

// GetMaterialRate handles GET /api/v1/material-rates/:id
func GetMaterialRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var rate models.MaterialRate
	if err := db.Preload("Metal").Preload("UpdatedBy").First(&rate, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "RATE_NOT_FOUND", "Material rate not found")
		return
	}

	respondData(c, http.StatusOK, rate)
}

// CreateMaterialRate handles POST /api/v1/material-rates
// At most one rate may exist per metal per date.
func CreateMaterialRate(c *gin.Context) {
	var req CreateMaterialRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	rateDate, err := time.Parse(rateDateLayout, req.RateDate)
	if err != nil {
		respondValidationError(c, "rate_date must be formatted as YYYY-MM-DD")
		return
	}

	db := config.GetDB()
	var rate models.MaterialRate
	err = db.Transaction(func(tx *gorm.DB) error {
		var metal models.Metal
		if err := tx.First(&metal, req.MetalID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("METAL_NOT_FOUND", "Referenced metal does not exist")
			}
			return err
		}
		if req.UpdatedByID != nil {
			var user models.User
			if err := tx.First(&user, *req.UpdatedByID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("USER_NOT_FOUND", "Referenced user does not exist")
				}
				return err
			}
		}

		rate = models.MaterialRate{
			MetalID:     req.MetalID,
			RatePerGram: req.RatePerGram,
			RateDate:    rateDate,
			UpdatedByID: req.UpdatedByID,
		}
		return tx.Create(&rate).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_RATE", "A rate for this metal and date already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to record material rate")
		return
	}

	if err := db.Preload("Metal").Preload("UpdatedBy").First(&rate, rate.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load rate details")
		return
	}

	respondData(c, http.StatusCreated, rate)
}

// UpdateMaterialRate handles PUT /api/v1/material-rates/:id
// Only the rate value and the staff attribution can change; the metal
// and date identify the row and are fixed.
func UpdateMaterialRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateMaterialRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var rate models.MaterialRate
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rate, id).Error; err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.RatePerGram != nil {
			updates["rate_per_gram"] = *req.RatePerGram
		}
		if req.UpdatedByID != nil {
			var user models.User
			if err := tx.First(&user, *req.UpdatedByID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("USER_NOT_FOUND", "Referenced user does not exist")
				}
				return err
			}
			updates["updated_by_id"] = *req.UpdatedByID
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&rate).Updates(updates).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "RATE_NOT_FOUND", "Material rate not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update material rate")
		return
	}

	if err := db.Preload("Metal").Preload("UpdatedBy").First(&rate, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load rate details")
		return
	}

	respondData(c, http.StatusOK, rate)
}

// DeleteMaterialRate handles DELETE /api/v1/material-rates/:id
func DeleteMaterialRate(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var rate models.MaterialRate
	if err := db.First(&rate, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "RATE_NOT_FOUND", "Material rate not found")
		return
	}

	if err := db.Delete(&rate).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete material rate")
		return
	}

	c.Status(http.StatusNoContent)
}
