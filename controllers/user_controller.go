package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUserRequest represents the request body for creating a staff user
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=150"`
	Password string `json:"password" binding:"required,min=8"`
	RoleID   uint   `json:"role_id" binding:"required"`
	BranchID *uint  `json:"branch_id"`
}

// UpdateUserRequest represents the request body for updating a staff user
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Email    *string `json:"email" binding:"omitempty,email,max=150"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	RoleID   *uint   `json:"role_id"`
	BranchID *uint   `json:"branch_id"`
}

// ListUsers handles GET /api/v1/users
func ListUsers(c *gin.Context) {
	db := config.GetDB()

	var users []models.User
	if err := db.Preload("Role").Preload("Branch").Order("id ASC").Find(&users).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch users")
		return
	}

	respondData(c, http.StatusOK, users)
}

// GetUser handles GET /api/v1/users/:id
func GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.Preload("Role").Preload("Branch").First(&user, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
		return
	}

	respondData(c, http.StatusOK, user)
}

// CreateUser handles POST /api/v1/users
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to hash password")
		return
	}

	db := config.GetDB()
	var user models.User
	err = db.Transaction(func(tx *gorm.DB) error {
		// The role must exist; the branch too when supplied
		var role models.Role
		if err := tx.First(&role, req.RoleID).Error; err != nil {
			if utils.IsNotFound(err) {
				return utils.NewDataError("ROLE_NOT_FOUND", "Referenced role does not exist")
			}
			return err
		}
		if req.BranchID != nil {
			var branch models.Branch
			if err := tx.First(&branch, *req.BranchID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("BRANCH_NOT_FOUND", "Referenced branch does not exist")
				}
				return err
			}
		}

		user = models.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: string(hash),
			RoleID:       req.RoleID,
			BranchID:     req.BranchID,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_EMAIL", "A user with this email already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create user")
		return
	}

	// Load relations to return complete data
	if err := db.Preload("Role").Preload("Branch").First(&user, user.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load user details")
		return
	}

	respondData(c, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/v1/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Email != nil {
			updates["email"] = *req.Email
		}
		if req.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			updates["password_hash"] = string(hash)
		}
		if req.RoleID != nil {
			var role models.Role
			if err := tx.First(&role, *req.RoleID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("ROLE_NOT_FOUND", "Referenced role does not exist")
				}
				return err
			}
			updates["role_id"] = *req.RoleID
		}
		if req.BranchID != nil {
			var branch models.Branch
			if err := tx.First(&branch, *req.BranchID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("BRANCH_NOT_FOUND", "Referenced branch does not exist")
				}
				return err
			}
			updates["branch_id"] = *req.BranchID
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&user).Updates(updates).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_EMAIL", "A user with this email already exists")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update user")
		return
	}

	if err := db.Preload("Role").Preload("Branch").First(&user, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load user details")
		return
	}

	respondData(c, http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:id
// Rows that merely point at the user (rates entered, tickets assigned,
// designs assigned, reviews curated) keep existing with a nulled reference.
func DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.MaterialRate{}).Where("updated_by_id = ?", id).
			Update("updated_by_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ServiceTicket{}).Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.CustomDesign{}).Where("assignee_id = ?", id).
			Update("assignee_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Review{}).Where("curator_id = ?", id).
			Update("curator_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete user")
		return
	}

	c.Status(http.StatusNoContent)
}
