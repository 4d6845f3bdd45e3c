package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMetalRouter() *gin.Engine {
	router := setupTestRouter()
	router.GET("/api/v1/metals", ListMetals)
	router.GET("/api/v1/metals/:id", GetMetal)
	router.POST("/api/v1/metals", CreateMetal)
	router.PUT("/api/v1/metals/:id", UpdateMetal)
	router.DELETE("/api/v1/metals/:id", DeleteMetal)
	return router
}

func TestCreateMetal(t *testing.T) {
	setupTestDB(t)
	router := setupMetalRouter()

	w := performRequest(router, "POST", "/api/v1/metals", gin.H{"type": "GOLD", "purity": "22K"})

	require.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "GOLD", data["type"])
	assert.Equal(t, "22K", data["purity"])
}

func TestCreateMetalUnknownType(t *testing.T) {
	setupTestDB(t)
	router := setupMetalRouter()

	w := performRequest(router, "POST", "/api/v1/metals", gin.H{"type": "PLATINUM", "purity": "950"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestCreateMetalDuplicateTypePurity(t *testing.T) {
	db := setupTestDB(t)
	router := setupMetalRouter()
	seedMetal(t, db, models.MetalGold, "22K")

	w := performRequest(router, "POST", "/api/v1/metals", gin.H{"type": "GOLD", "purity": "22K"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_METAL", errorCode(t, w))
}

func TestCreateMetalSamePurityDifferentType(t *testing.T) {
	db := setupTestDB(t)
	router := setupMetalRouter()
	seedMetal(t, db, models.MetalGold, "22K")

	// The uniqueness constraint is on the pair, not on purity alone
	w := performRequest(router, "POST", "/api/v1/metals", gin.H{"type": "ROSE_GOLD", "purity": "22K"})

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteMetalRestrictedByProducts(t *testing.T) {
	db := setupTestDB(t)
	router := setupMetalRouter()
	category := seedCategory(t, db, "Rings")
	metal := seedMetal(t, db, models.MetalGold, "22K")
	seedProduct(t, db, category.ID, metal.ID, "Classic Gold Band")

	w := performRequest(router, "DELETE", "/api/v1/metals/1", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "METAL_IN_USE", errorCode(t, w))
}

func TestDeleteMetalRestrictedByRates(t *testing.T) {
	db := setupTestDB(t)
	router := setupMetalRouter()
	metal := seedMetal(t, db, models.MetalSilver, "925")

	rate := models.MaterialRate{
		MetalID:     metal.ID,
		RatePerGram: 85.50,
		RateDate:    mustParseTime(t, "2026-08-20T00:00:00Z"),
	}
	require.NoError(t, db.Create(&rate).Error)

	w := performRequest(router, "DELETE", "/api/v1/metals/1", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "METAL_IN_USE", errorCode(t, w))
}

func TestDeleteMetalNullsDesignPreference(t *testing.T) {
	db := setupTestDB(t)
	router := setupMetalRouter()
	metal := seedMetal(t, db, models.MetalRoseGold, "18K")

	design := models.CustomDesign{
		CustomerName:     "Asha Rao",
		CustomerPhone:    "+91-9000000001",
		ImageURL:         "https://cdn.kalyani.example/designs/sketch-1.png",
		Status:           models.DesignNew,
		PreferredMetalID: &metal.ID,
	}
	require.NoError(t, db.Create(&design).Error)

	w := performRequest(router, "DELETE", "/api/v1/metals/1", nil)

	require.Equal(t, http.StatusNoContent, w.Code)

	var reloaded models.CustomDesign
	require.NoError(t, db.First(&reloaded, design.ID).Error)
	assert.Nil(t, reloaded.PreferredMetalID)
}
