package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBookRouter() *gin.Engine {
	router := setupTestRouter()
	router.GET("/api/v1/books", ListBooks)
	router.GET("/api/v1/books/:id", GetBook)
	router.POST("/api/v1/books", CreateBook)
	router.PUT("/api/v1/books/:id", UpdateBook)
	router.DELETE("/api/v1/books/:id", DeleteBook)
	return router
}

func TestBookLifecycle(t *testing.T) {
	setupTestDB(t)
	router := setupBookRouter()

	created := performRequest(router, "POST", "/api/v1/books", gin.H{
		"title":  "The Goldsmith's Handbook",
		"author": "George E. Gee",
		"price":  499.00,
	})
	require.Equal(t, http.StatusCreated, created.Code)

	got := performRequest(router, "GET", "/api/v1/books/1", nil)
	require.Equal(t, http.StatusOK, got.Code)
	response := decodeResponse(t, got)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "The Goldsmith's Handbook", data["title"])

	updated := performRequest(router, "PUT", "/api/v1/books/1", gin.H{"price": 549.00})
	require.Equal(t, http.StatusOK, updated.Code)

	deleted := performRequest(router, "DELETE", "/api/v1/books/1", nil)
	require.Equal(t, http.StatusNoContent, deleted.Code)

	missing := performRequest(router, "GET", "/api/v1/books/1", nil)
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "BOOK_NOT_FOUND", errorCode(t, missing))
}

func TestCreateBookValidation(t *testing.T) {
	setupTestDB(t)
	router := setupBookRouter()

	w := performRequest(router, "POST", "/api/v1/books", gin.H{"title": "No Author"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}
