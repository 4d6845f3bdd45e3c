package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/kalyani-jewellers/jewellers-api/utils"
	"gorm.io/gorm"
)

// CreateReviewRequest represents the request body for recording a review
type CreateReviewRequest struct {
	GoogleReviewID *string `json:"google_review_id" binding:"omitempty,max=100"`
	Rating         int     `json:"rating" binding:"required,min=1,max=5"`
	Text           string  `json:"text"`
	CuratorID      *uint   `json:"curator_id"`
}

// UpdateReviewRequest represents the request body for updating a review
type UpdateReviewRequest struct {
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Text      *string `json:"text"`
	CuratorID *uint   `json:"curator_id"`
}

// ListReviews handles GET /api/v1/reviews
func ListReviews(c *gin.Context) {
	db := config.GetDB()

	var reviews []models.Review
	if err := db.Preload("Curator").Order("created_at DESC").Find(&reviews).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to fetch reviews")
		return
	}

	respondData(c, http.StatusOK, reviews)
}

// GetReview handles GET /api/v1/reviews/:id
func GetReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var review models.Review
	if err := db.Preload("Curator").First(&review, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
		return
	}

	respondData(c, http.StatusOK, review)
}

// CreateReview handles POST /api/v1/reviews
func CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		if req.CuratorID != nil {
			var curator models.User
			if err := tx.First(&curator, *req.CuratorID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("USER_NOT_FOUND", "Referenced curator does not exist")
				}
				return err
			}
		}

		review = models.Review{
			GoogleReviewID: req.GoogleReviewID,
			Rating:         req.Rating,
			Text:           req.Text,
			CuratorID:      req.CuratorID,
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		if utils.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "DUPLICATE_REVIEW", "This Google review has already been imported")
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create review")
		return
	}

	respondData(c, http.StatusCreated, review)
}

// UpdateReview handles PUT /api/v1/reviews/:id
// The Google review id identifies an imported review and cannot change.
func UpdateReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	db := config.GetDB()
	var review models.Review
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, id).Error; err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Rating != nil {
			updates["rating"] = *req.Rating
		}
		if req.Text != nil {
			updates["text"] = *req.Text
		}
		if req.CuratorID != nil {
			var curator models.User
			if err := tx.First(&curator, *req.CuratorID).Error; err != nil {
				if utils.IsNotFound(err) {
					return utils.NewDataError("USER_NOT_FOUND", "Referenced curator does not exist")
				}
				return err
			}
			updates["curator_id"] = *req.CuratorID
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&review).Updates(updates).Error
	})
	if err != nil {
		if utils.IsNotFound(err) {
			respondError(c, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
			return
		}
		if dataErr, ok := err.(*utils.DataError); ok {
			respondError(c, http.StatusNotFound, dataErr.Code, dataErr.Message)
			return
		}
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update review")
		return
	}

	if err := db.Preload("Curator").First(&review, id).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load review details")
		return
	}

	respondData(c, http.StatusOK, review)
}

// DeleteReview handles DELETE /api/v1/reviews/:id
func DeleteReview(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	var review models.Review
	if err := db.First(&review, id).Error; err != nil {
		respondError(c, http.StatusNotFound, "REVIEW_NOT_FOUND", "Review not found")
		return
	}

	if err := db.Delete(&review).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete review")
		return
	}

	c.Status(http.StatusNoContent)
}
