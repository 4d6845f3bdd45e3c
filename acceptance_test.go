package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestServerStartup verifies the full route table can be built
func TestServerStartup(t *testing.T) {
	router := setupRouter()
	assert.NotNil(t, router, "Router should be initialized")
	assert.NotEmpty(t, router.Routes(), "Router should have routes registered")
}

// TestAPIHealthEndpointAcceptance simulates a client checking the API is up
func TestAPIHealthEndpointAcceptance(t *testing.T) {
	router := setupRouter()

	req, err := http.NewRequest("GET", "/api/v1/health", nil)
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "Health endpoint should return 200 OK")

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.True(t, response.Success)
	assert.Equal(t, "Kalyani Jewellers API is running", response.Message)
}

// TestHealthEndpointRepeatability hits health repeatedly the way a load
// balancer probe would
func TestHealthEndpointRepeatability(t *testing.T) {
	router := setupRouter()

	for i := 0; i < 5; i++ {
		req, _ := http.NewRequest("GET", "/api/v1/health", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "Probe %d should succeed", i)
	}
}
