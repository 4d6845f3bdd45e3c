package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateServiceTicketRequest represents the request body for opening a ticket
type CreateServiceTicketRequest struct {
	Type            models.TicketType `json:"type" binding:"required,oneof=CLEANING REPAIR"`
	CustomerName    string            `json:"customer_name" binding:"required,max=100"`
	CustomerPhone   string            `json:"customer_phone" binding:"required,max=20"`
	CustomerEmail   string            `json:"customer_email" binding:"omitempty,email,max=150"`
	ItemDescription string            `json:"item_description"`
	BranchID        *uint             `json:"branch_id"`
	AssigneeID      *uint             `json:"assignee_id"`
}

// UpdateServiceTicketRequest represents the request body for updating a ticket
type UpdateServiceTicketRequest struct {
	Status          *models.TicketStatus `json:"status" binding:"omitempty,oneof=NEW IN_PROGRESS DONE CANCELLED"`
	CustomerName    *string              `json:"customer_name" binding:"omitempty,max=100"`
	CustomerPhone   *string              `json:"customer_phone" binding:"omitempty,max=20"`
	CustomerEmail   *string              `json:"customer_email" binding:"omitempty,email,max=150"`
	ItemDescription *string              `json:"item_description"`
	BranchID        *uint                `json:"branch_id"`
	AssigneeID      *uint                `json:"assignee_id"`
}

// ListServiceTickets handles GET /api/v1/service-tickets
// Supports filtering by status and branch_id.
func ListServiceTickets(c *gin.Context) {
	db := config.GetDB()

	query := db.Preload("Branch").Preload("Assignee")
	if raw := c.Query("status"); raw != "" {
		status := models.TicketStatus(raw)
		if !status.IsValid() {
			respondError(c, http.StatusBadRequest, "INVALID_FILTER", "status must be one of NEW, IN_PROGRESS, DONE, CANCELLED")
			return
		}
		query = query.Where("status = ?", status)
	}
	if raw := c.Query("branch_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "INVALID_FILTER", "branch_id must be a positive integer")
			return
		}
		query = query.Where("branch_id = ?", id)
	}

	var tickets []models.ServiceTicket
	if err := query.Order("created_at DESC").Find(&tickets).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch service tickets")
		return
	}

	respondData(c, http.StatusOK, tickets)
}

// GetServiceTicket handles GET /api/v1/service-tickets/:id
func GetServiceTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var ticket models.ServiceTicket
	if err := db.Preload("Branch").Preload("Assignee").First(&ticket, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "TICKET_NOT_FOUND", "Service ticket not found")
		return
	}

	respondData(c, http.StatusOK, ticket)
}

// CreateServiceTicket handles POST /api/v1/service-tickets
func CreateServiceTicket(c *gin.Context) {
	var req CreateServiceTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var ticket models.ServiceTicket
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.BranchID != nil {
			var branch models.Branch
			if err := tx.First(&branch, *req.BranchID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("BRANCH_NOT_FOUND", "Referenced branch does not exist")
				}
				return err
			}
		}
		if req.AssigneeID != nil {
			var assignee models.User
			if err := tx.First(&assignee, *req.AssigneeID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("USER_NOT_FOUND", "Referenced assignee does not exist")
				}
				return err
			}
		}

		ticket = models.ServiceTicket{
			Type:            req.Type,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerEmail:   req.CustomerEmail,
			ItemDescription: req.ItemDescription,
			Status:          models.TicketNew,
			BranchID:        req.BranchID,
			AssigneeID:      req.AssigneeID,
		}
		return tx.Create(&ticket).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create service ticket")
		return
	}

	if err := db.Preload("Branch").Preload("Assignee").First(&ticket, ticket.ID).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load ticket details")
		return
	}

	respondData(c, http.StatusCreated, ticket)
}

// UpdateServiceTicket handles PUT /api/v1/service-tickets/:id
func UpdateServiceTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var ticket models.ServiceTicket
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&ticket, id).Error; err != nil {
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
		if req.ItemDescription != nil {
			updates["item_description"] = *req.ItemDescription
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

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&ticket).Updates(updates).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "TICKET_NOT_FOUND", "Service ticket not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update service ticket")
		return
	}

	if err := db.Preload("Branch").Preload("Assignee").First(&ticket, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load ticket details")
		return
	}

	respondData(c, http.StatusOK, ticket)
}

// DeleteServiceTicket handles DELETE /api/v1/service-tickets/:id
func DeleteServiceTicket(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var ticket models.ServiceTicket
	if err := db.First(&ticket, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "TICKET_NOT_FOUND", "Service ticket not found")
		return
	}

	if err := db.Delete(&ticket).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete service ticket")
		return
	}

	c.Status(http.StatusNoContent)
}
