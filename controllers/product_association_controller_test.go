package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAssociationRouter() *gin.Engine {
	router := setupTestRouter()
	router.POST("/api/v1/products/:id/gems/:gemId", AttachGem)
	router.DELETE("/api/v1/products/:id/gems/:gemId", DetachGem)
	router.POST("/api/v1/products/:id/offers/:offerId", AttachOffer)
	router.DELETE("/api/v1/products/:id/offers/:offerId", DetachOffer)
	return router
}

func TestAttachGem(t *testing.T) {
	db := setupTestDB(t)
	router := setupAssociationRouter()
	seedCatalogueProduct(t, db)
	seedGem(t, db, "Ruby")

	w := performRequest(router, "POST", "/api/v1/products/1/gems/1", nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	db.Table("product_gems").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAttachGemTwice(t *testing.T) {
	db := setupTestDB(t)
	router := setupAssociationRouter()
	seedCatalogueProduct(t, db)
	seedGem(t, db, "Ruby")

	first := performRequest(router, "POST", "/api/v1/products/1/gems/1", nil)
	require.Equal(t, http.StatusCreated, first.Code)

	second := performRequest(router, "POST", "/api/v1/products/1/gems/1", nil)
	require.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "GEM_ALREADY_ATTACHED", errorCode(t, second))
}

func TestAttachGemUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	router := setupAssociationRouter()
	seedGem(t, db, "Ruby")

	w := performRequest(router, "POST", "/api/v1/products/9/gems/1", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", errorCode(t, w))
}

func TestDetachGem(t *testing.T) {
	db := setupTestDB(t)
	router := setupAssociationRouter()
	seedCatalogueProduct(t, db)
	seedGem(t, db, "Ruby")

	performRequest(router, "POST", "/api/v1/products/1/gems/1", nil)
	w := performRequest(router, "DELETE", "/api/v1/products/1/gems/1", nil)

	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	db.Table("product_gems").Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDetachGemNotAttached(t *testing.T) {
	db := setupTestDB(t)
	router := setupAssociationRouter()
	seedCatalogueProduct(t, db)
	seedGem(t, db, "Ruby")

	w := performRequest(router, "DELETE", "/api/v1/products/1/gems/1", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "LINK_NOT_FOUND", errorCode(t, w))
}

func TestAttachOffer(t *testing.T) {
	db := setupTestDB(t)
	router := setupAssociationRouter()
	seedCatalogueProduct(t, db)
	seedOffer(t, db, "diwali-2026")

	w := performRequest(router, "POST", "/api/v1/products/1/offers/1", nil)

	require.Equal(t, http.StatusCreated, w.Code)
}

func TestAttachOfferTwice(t *testing.T) {
	db := setupTestDB(t)
	router := setupAssociationRouter()
	seedCatalogueProduct(t, db)
	seedOffer(t, db, "diwali-2026")

	first := performRequest(router, "POST", "/api/v1/products/1/offers/1", nil)
	require.Equal(t, http.StatusCreated, first.Code)

	second := performRequest(router, "POST", "/api/v1/products/1/offers/1", nil)
	require.Equal(t, http.StatusConflict, second.Code)
	assert.Equal(t, "OFFER_ALREADY_ATTACHED", errorCode(t, second))
}

func TestDetachOffer(t *testing.T) {
	db := setupTestDB(t)
	router := setupAssociationRouter()
	seedCatalogueProduct(t, db)
	seedOffer(t, db, "diwali-2026")

	performRequest(router, "POST", "/api/v1/products/1/offers/1", nil)
	w := performRequest(router, "DELETE", "/api/v1/products/1/offers/1", nil)

	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	db.Table("product_offers").Count(&count)
	assert.Equal(t, int64(0), count)
}
