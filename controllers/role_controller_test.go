package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoleRouter() *gin.Engine {
	router := setupTestRouter()
	router.GET("/api/v1/roles", ListRoles)
	router.GET("/api/v1/roles/:id", GetRole)
	router.POST("/api/v1/roles", CreateRole)
	router.PUT("/api/v1/roles/:id", UpdateRole)
	router.DELETE("/api/v1/roles/:id", DeleteRole)
	return router
}

func TestCreateRole(t *testing.T) {
	setupTestDB(t)
	router := setupRoleRouter()

	w := performRequest(router, "POST", "/api/v1/roles", gin.H{"name": "MANAGER"})

	require.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	assert.Equal(t, true, response["success"])
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "MANAGER", data["name"])
}

func TestCreateRoleDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	router := setupRoleRouter()
	seedRole(t, db, "MANAGER")

	w := performRequest(router, "POST", "/api/v1/roles", gin.H{"name": "MANAGER"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_ROLE", errorCode(t, w))
}

func TestCreateRoleMissingName(t *testing.T) {
	setupTestDB(t)
	router := setupRoleRouter()

	w := performRequest(router, "POST", "/api/v1/roles", gin.H{})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestGetRoleNotFound(t *testing.T) {
	setupTestDB(t)
	router := setupRoleRouter()

	w := performRequest(router, "GET", "/api/v1/roles/999", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ROLE_NOT_FOUND", errorCode(t, w))
}

func TestGetRoleInvalidID(t *testing.T) {
	setupTestDB(t)
	router := setupRoleRouter()

	w := performRequest(router, "GET", "/api/v1/roles/abc", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", errorCode(t, w))
}

func TestListRoles(t *testing.T) {
	db := setupTestDB(t)
	router := setupRoleRouter()
	seedRole(t, db, "ADMIN")
	seedRole(t, db, "SALES")

	w := performRequest(router, "GET", "/api/v1/roles", nil)

	require.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestUpdateRole(t *testing.T) {
	db := setupTestDB(t)
	router := setupRoleRouter()
	role := seedRole(t, db, "CLERK")

	w := performRequest(router, "PUT", "/api/v1/roles/1", gin.H{"name": "SENIOR_CLERK"})

	require.Equal(t, http.StatusOK, w.Code)

	var updated struct{ Name string }
	require.NoError(t, db.Table("roles").Select("name").Where("id = ?", role.ID).Scan(&updated).Error)
	assert.Equal(t, "SENIOR_CLERK", updated.Name)
}

func TestDeleteRole(t *testing.T) {
	db := setupTestDB(t)
	router := setupRoleRouter()
	role := seedRole(t, db, "TEMP")

	w := performRequest(router, "DELETE", "/api/v1/roles/1", nil)

	require.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	db.Table("roles").Where("id = ?", role.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestDeleteRoleRestrictedWhileAssigned(t *testing.T) {
	db := setupTestDB(t)
	router := setupRoleRouter()
	role := seedRole(t, db, "MANAGER")
	seedUser(t, db, "manager@kalyani.example", role.ID, nil)

	w := performRequest(router, "DELETE", "/api/v1/roles/1", nil)

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "ROLE_IN_USE", errorCode(t, w))

	// The role must survive a rejected delete
	var count int64
	db.Table("roles").Where("id = ?", role.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}
