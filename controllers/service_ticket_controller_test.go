package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTicketRouter() *gin.Engine {
	router := setupTestRouter()
	router.GET("/api/v1/service-tickets", ListServiceTickets)
	router.GET("/api/v1/service-tickets/:id", GetServiceTicket)
	router.POST("/api/v1/service-tickets", CreateServiceTicket)
	router.PUT("/api/v1/service-tickets/:id", UpdateServiceTicket)
	router.DELETE("/api/v1/service-tickets/:id", DeleteServiceTicket)
	return router
}

func TestCreateServiceTicketStartsAsNew(t *testing.T) {
	setupTestDB(t)
	router := setupTicketRouter()

	w := performRequest(router, "POST", "/api/v1/service-tickets", gin.H{
		"type":             "CLEANING",
		"customer_name":    "Asha Rao",
		"customer_phone":   "+91-9000000001",
		"item_description": "Gold chain, 24 inch",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "NEW", data["status"])
}

func TestCreateServiceTicketInvalidType(t *testing.T) {
	setupTestDB(t)
	router := setupTicketRouter()

	w := performRequest(router, "POST", "/api/v1/service-tickets", gin.H{
		"type":           "POLISHING",
		"customer_name":  "Asha Rao",
		"customer_phone": "+91-9000000001",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestCreateServiceTicketUnknownAssignee(t *testing.T) {
	setupTestDB(t)
	router := setupTicketRouter()

	w := performRequest(router, "POST", "/api/v1/service-tickets", gin.H{
		"type":           "REPAIR",
		"customer_name":  "Asha Rao",
		"customer_phone": "+91-9000000001",
		"assignee_id":    42,
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, w))
}

func TestUpdateServiceTicketStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupTicketRouter()

	ticket := models.ServiceTicket{
		Type:          models.TicketRepair,
		CustomerName:  "Asha Rao",
		CustomerPhone: "+91-9000000001",
		Status:        models.TicketNew,
	}
	require.NoError(t, db.Create(&ticket).Error)

	w := performRequest(router, "PUT", "/api/v1/service-tickets/1", gin.H{"status": "IN_PROGRESS"})

	require.Equal(t, http.StatusOK, w.Code)

	var reloaded models.ServiceTicket
	require.NoError(t, db.First(&reloaded, ticket.ID).Error)
	assert.Equal(t, models.TicketInProgress, reloaded.Status)
}

func TestUpdateServiceTicketInvalidStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupTicketRouter()

	ticket := models.ServiceTicket{
		Type:          models.TicketRepair,
		CustomerName:  "Asha Rao",
		CustomerPhone: "+91-9000000001",
		Status:        models.TicketNew,
	}
	require.NoError(t, db.Create(&ticket).Error)

	w := performRequest(router, "PUT", "/api/v1/service-tickets/1", gin.H{"status": "ARCHIVED"})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w))
}

func TestListServiceTicketsFilterByStatus(t *testing.T) {
	db := setupTestDB(t)
	router := setupTicketRouter()

	for _, status := range []models.TicketStatus{models.TicketNew, models.TicketDone} {
		ticket := models.ServiceTicket{
			Type:          models.TicketCleaning,
			CustomerName:  "Asha Rao",
			CustomerPhone: "+91-9000000001",
			Status:        status,
		}
		require.NoError(t, db.Create(&ticket).Error)
	}

	w := performRequest(router, "GET", "/api/v1/service-tickets?status=DONE", nil)

	require.Equal(t, http.StatusOK, w.Code)
	response := decodeResponse(t, w)
	data := response["data"].([]interface{})
	require.Len(t, data, 1)
	first := data[0].(map[string]interface{})
	assert.Equal(t, "DONE", first["status"])
}

func TestListServiceTicketsInvalidStatusFilter(t *testing.T) {
	setupTestDB(t)
	router := setupTicketRouter()

	w := performRequest(router, "GET", "/api/v1/service-tickets?status=STALE", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_FILTER", errorCode(t, w))
}

func TestDeleteServiceTicket(t *testing.T) {
	db := setupTestDB(t)
	router := setupTicketRouter()

	ticket := models.ServiceTicket{
		Type:          models.TicketCleaning,
		CustomerName:  "Asha Rao",
		CustomerPhone: "+91-9000000001",
		Status:        models.TicketDone,
	}
	require.NoError(t, db.Create(&ticket).Error)

	w := performRequest(router, "DELETE", "/api/v1/service-tickets/1", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
}
