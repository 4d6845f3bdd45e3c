package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDesignRouter() *gin.Engine {
	router := setupTestRouter()
	router.GET("/api/v1/custom-designs", ListCustomDesigns)
	router.GET("/api/v1/custom-designs/:id", GetCustomDesign)
	router.POST("/api/v1/custom-designs", CreateCustomDesign)
	router.PUT("/api/v1/custom-designs/:id", UpdateCustomDesign)
	router.DELETE("/api/v1/custom-designs/:id", DeleteCustomDesign)
	return router
}

func TestCreateCustomDesignStartsAsNew(t *testing.T) {
	setupTestDB(t)
	router := setupDesignRouter()

	w := performRequest(router, "POST", "/api/v1/custom-designs", gin.H{
		"customer_name":  "Asha Rao",
		"customer_phone": "+91-9000000001",
		"image_url":      "https://cdn.kalyani.example/designs/sketch-1.png",
		"budget":         150000.00,
	})

	require.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "NEW", data["status"])
}

func TestCreateCustomDesignMissingImage(t *testing.T) {
	setupTestDB(t)
	router := setupDesignRouter()

	w := performRequest(router, "POST", "/api/v1/custom-designs", gin.H{
		"customer_name":  "Asha Rao",
		"customer_phone": "+91-9000000001",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestCreateCustomDesignUnknownPreferredMetal(t *testing.T) {
	setupTestDB(t)
	router := setupDesignRouter()

	w := performRequest(router, "POST", "/api/v1/custom-designs", gin.H{
		"customer_name":      "Asha Rao",
		"customer_phone":     "+91-9000000001",
		"image_url":          "https://cdn.kalyani.example/designs/sketch-1.png",
		"preferred_metal_id": 42,
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "METAL_NOT_FOUND", errorCode(t, w))
}

func TestUpdateCustomDesignStatusProgression(t *testing.T) {
	db := setupTestDB(t)
	router := setupDesignRouter()

	design := models.CustomDesign{
		CustomerName:  "Asha Rao",
		CustomerPhone: "+91-9000000001",
		ImageURL:      "https://cdn.kalyani.example/designs/sketch-1.png",
		Status:        models.DesignNew,
	}
	require.NoError(t, db.Create(&design).Error)

	w := performRequest(router, "PUT", "/api/v1/custom-designs/1", gin.H{"status": "QUOTED"})

	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.CustomDesign
	require.NoError(t, db.First(&reloaded, design.ID).Error)
	assert.Equal(t, models.DesignQuoted, reloaded.Status)
}

func TestListCustomDesignsFilterByStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupDesignRouter()

	for _, status := range []models.DesignStatus{models.DesignNew, models.DesignClosed} {
		design := models.CustomDesign{
			CustomerName:  "Asha Rao",
			CustomerPhone: "+91-9000000001",
			ImageURL:      "https://cdn.kalyani.example/designs/" + string(status) + ".png",
			Status:        status,
		}
		require.NoError(t, db.Create(&design).Error)
	}

	w := performRequest(router, "GET", "/api/v1/custom-designs?status=CLOSED", nil)

	require.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "CLOSED", first["status"])
}
