package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateCustomDesignRequest represents the request body for submitting a design request
type CreateCustomDesignRequest struct {
	CustomerName     string   `json:"customer_name" binding:"required,max=100"`
	CustomerPhone    string   `json:"customer_phone" binding:"required,max=20"`
	CustomerEmail    string   `json:"customer_email" binding:"omitempty,email,max=150"`
	Budget           *float64 `json:"budget" binding:"omitempty,gt=0"`
	ImageURL         string   `json:"image_url" binding:"required,max=500"`
	Description      string   `json:"description"`
	AssigneeID       *uint    `json:"assignee_id"`
	PreferredMetalID *uint    `json:"preferred_metal_id"`
}

// UpdateCustomDesignRequest represents the request body for updating a design request
type UpdateCustomDesignRequest struct {
	Status           *models.DesignStatus `json:"status" binding:"omitempty,oneof=NEW REVIEWED IN_PROGRESS QUOTED CLOSED"`
	CustomerName     *string              `json:"customer_name" binding:"omitempty,max=100"`
	CustomerPhone    *string              `json:"customer_phone" binding:"omitempty,max=20"`
	CustomerEmail    *string              `json:"customer_email" binding:"omitempty,email,max=150"`
	Budget           *float64             `json:"budget" binding:"omitempty,gt=0"`
	ImageURL         *string              `json:"image_url" binding:"omitempty,max=500"`
	Description      *string              `json:"description"`
	AssigneeID       *uint                `json:"assignee_id"`
	PreferredMetalID *uint                `json:"preferred_metal_id"`
}

// ListCustomDesigns handles GET /api/v1/custom-designs
// Supports filtering by status.
func ListCustomDesigns(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Assignee").Preload("PreferredMetal")
	if raw := c.Query("status"); raw != "" {
		status := models.DesignStatus(raw)
		if !status.IsValid() {
			respondError(c, http.StatusBadRequest, "INVALID_FILTER", "status must be one of NEW, REVIEWED, IN_PROGRESS, QUOTED, CLOSED")
			return
		}
		query = query.Where("status = ?", status)
	}

	var designs []models.CustomDesign
	if err := query.Order("created_at DESC").Find(&designs).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch custom designs")
		return
	}

	respondData(c, http.StatusOK, designs)
}

// GetCustomDesign handles GET /api/v1/custom-designs/:id
func GetCustomDesign(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var design models.CustomDesign
	if err := db.Preload("Assignee").Preload("PreferredMetal").First(&design, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "DESIGN_NOT_FOUND", "Custom design not found")
		return
	}

	respondData(c, http.StatusOK, design)
}

// CreateCustomDesign handles POST /api/v1/custom-designs
func CreateCustomDesign(c *gin.Context) {
	var req CreateCustomDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var design models.CustomDesign
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.AssigneeID != nil {
			var assignee models.User
			if err := tx.First(&assignee, *req.AssigneeID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("USER_NOT_FOUND", "Referenced assignee does not exist")
				}
				return err
			}
		}
		if req.PreferredMetalID != nil {
			var metal models.Metal
			if err := tx.First(&metal, *req.PreferredMetalID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("METAL_NOT_FOUND", "Referenced metal does not exist")
				}
				return err
			}
		}

		design = models.CustomDesign{
			CustomerName:     req.CustomerName,
			CustomerPhone:    req.CustomerPhone,
			CustomerEmail:    req.CustomerEmail,
			Budget:           req.Budget,
			ImageURL:         req.ImageURL,
			Description:      req.Description,
			Status:           models.DesignNew,
			AssigneeID:       req.AssigneeID,
			PreferredMetalID: req.PreferredMetalID,
		}
		return tx.Create(&design).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create custom design")
		return
	}

	if err := db.Preload("Assignee").Preload("PreferredMetal").First(&design, design.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load design details")
		return
	}

	respondData(c, http.StatusCreated, design)
}

// UpdateCustomDesign handles PUT /api/v1/custom-designs/:id
func UpdateCustomDesign(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCustomDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var design models.CustomDesign
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&design, id).Error; err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.CustomerName != nil {
			updates["customer_name"] = *req.CustomerName
		}
		if req.CustomerPhone != nil {
			updates["customer_phone"] = *req.CustomerPhone
		}
		if req.CustomerEmail != nil {
			updates["customer_email"] = *req.CustomerEmail
		}
		if req.Budget != nil {
			updates["budget"] = *req.Budget
		}
		if req.ImageURL != nil {
			updates["image_url"] = *req.ImageURL
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.AssigneeID != nil {
			var assignee models.User
			if err := tx.First(&assignee, *req.AssigneeID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("USER_NOT_FOUND", "Referenced assignee does not exist")
				}
				return err
			}
			updates["assignee_id"] = *req.AssigneeID
		}
		if req.PreferredMetalID != nil {
			var metal models.Metal
			if err := tx.First(&metal, *req.PreferredMetalID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("METAL_NOT_FOUND", "Referenced metal does not exist")
				}
				return err
			}
			updates["preferred_metal_id"] = *req.PreferredMetalID
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&design).Updates(updates).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "DESIGN_NOT_FOUND", "Custom design not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update custom design")
		return
	}

	if err := db.Preload("Assignee").Preload("PreferredMetal").First(&design, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load design details")
		return
	}

	respondData(c, http.StatusOK, design)
}

// DeleteCustomDesign handles DELETE /api/v1/custom-designs/:id
func DeleteCustomDesign(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var design models.CustomDesign
	if err := db.First(&design, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "DESIGN_NOT_FOUND", "Custom design not found")
		return
	}

	if err := db.Delete(&design).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete custom design")
		return
	}

	c.Status(http.StatusNoContent)
}
