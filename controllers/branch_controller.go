package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateBranchRequest represents the request body for creating a branch
type CreateBranchRequest struct {
	Code    string `json:"code" binding:"required,max=20"`
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"omitempty,max=255"`
	Hours   string `json:"hours" binding:"omitempty,max=100"`
}

// UpdateBranchRequest represents the request body for updating a branch
type UpdateBranchRequest struct {
	Code    *string `json:"code" binding:"omitempty,max=20"`
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Address *string `json:"address" binding:"omitempty,max=255"`
	Hours   *string `json:"hours" binding:"omitempty,max=100"`
}

// ListBranches handles GET /api/v1/branches
func ListBranches(c *gin.Context) {
	db := config.GetDB()

	var branches []models.Branch
	if err := db.Order("code ASC").Find(&branches).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch branches")
		return
	}

	respondData(c, http.StatusOK, branches)
}

// GetBranch handles GET /api/v1/branches/:id
func GetBranch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var branch models.Branch
	if err := db.First(&branch, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
		return
	}

	respondData(c, http.StatusOK, branch)
}

// CreateBranch handles POST /api/v1/branches
func CreateBranch(c *gin.Context) {
	var req CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	branch := models.Branch{
		Code:    req.Code,
		Name:    req.Name,
		Address: req.Address,
		Hours:   req.Hours,
	}

	db := config.GetDB()
	if err := db.Create(&branch).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_BRANCH_CODE", "A branch with this code already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create branch")
		return
	}

	respondData(c, http.StatusCreated, branch)
}

// UpdateBranch handles PUT /api/v1/branches/:id
func UpdateBranch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var branch models.Branch
	if err := db.First(&branch, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
		return
	}

	updates := make(map[string]interface{})
	if req.Code != nil {
		updates["code"] = *req.Code
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Hours != nil {
		updates["hours"] = *req.Hours
	}

	if len(updates) == 0 {
		respondData(c, http.StatusOK, branch)
		return
	}

	if err := db.Model(&branch).Updates(updates).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_BRANCH_CODE", "A branch with this code already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update branch")
		return
	}

	respondData(c, http.StatusOK, branch)
}

// DeleteBranch handles DELETE /api/v1/branches/:id
// Users and service tickets referencing the branch keep existing with a
// nulled branch reference.
func DeleteBranch(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var branch models.Branch
		if err := tx.First(&branch, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.User{}).Where("branch_id = ?", id).
			Update("branch_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ServiceTicket{}).Where("branch_id = ?", id).
			Update("branch_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&branch).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "BRANCH_NOT_FOUND", "Branch not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete branch")
		return
	}

	c.Status(http.StatusNoContent)
}
