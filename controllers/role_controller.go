package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateRoleRequest represents the request body for creating a role
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// UpdateRoleRequest represents the request body for updating a role
type UpdateRoleRequest struct {
	Name string `json:"name" binding:"required,max=50"`
}

// ListRoles handles GET /api/v1/roles
func ListRoles(c *gin.Context) {
	db := config.GetDB()

	var roles []models.Role
	if err := db.Order("id ASC").Find(&roles).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch roles")
		return
	}

	respondData(c, http.StatusOK, roles)
}

// GetRole handles GET /api/v1/roles/:id
func GetRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var role models.Role
	if err := db.First(&role, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "ROLE_NOT_FOUND", "Role not found")
		return
	}

	respondData(c, http.StatusOK, role)
}

// CreateRole handles POST /api/v1/roles
func CreateRole(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	role := models.Role{Name: req.Name}

	db := config.GetDB()
	if err := db.Create(&role).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_ROLE", "A role with this name already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create role")
		return
	}

	respondData(c, http.StatusCreated, role)
}

// UpdateRole handles PUT /api/v1/roles/:id
func UpdateRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var role models.Role
	if err := db.First(&role, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "ROLE_NOT_FOUND", "Role not found")
		return
	}

	if err := db.Model(&role).Update("name", req.Name).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_ROLE", "A role with this name already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update role")
		return
	}

	respondData(c, http.StatusOK, role)
}

// DeleteRole handles DELETE /api/v1/roles/:id
// Deletion is rejected while users still reference the role.
func DeleteRole(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.First(&role, id).Error; err != nil {
			return err
		}

		var dependents int64
		if err := tx.Model(&models.User{}).Where("role_id = ?", id).Count(&dependents).Error; err != nil {
			return err
		}
		if dependents > 0 {
			return utils.NewDataError("ROLE_IN_USE", "Role is assigned to existing users")
		}

		return tx.Delete(&role).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "ROLE_NOT_FOUND", "Role not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusConflict, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete role")
		return
	}

	c.Status(http.StatusNoContent)
}
