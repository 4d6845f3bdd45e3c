package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kalyani-jewellers/jewellers-api/config"
	"github.com/kalyani-jewellers/jewellers-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database with the full schema
// and installs it as the active connection for the handlers under test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := models.MigrateAll(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("Failed to parse time %q: %v", value, err)
	}
	return parsed
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// performRequest sends a JSON request through the router and returns the recorder
func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Buffer
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeResponse unmarshals the standard envelope into a map
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Response is not valid JSON: %v (body: %s)", err, w.Body.String())
	}
	return response
}

// errorCode extracts error.code from the standard envelope
func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	response := decodeResponse(t, w)
	errorData, ok := response["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("Response has no error object: %s", w.Body.String())
	}
	code, _ := errorData["code"].(string)
	return code
}

// Seed helpers. Each creates the row directly so tests can focus on the
// handler under test.

func seedRole(t *testing.T, db *gorm.DB, name string) models.Role {
	t.Helper()
	role := models.Role{Name: name}
	if err := db.Create(&role).Error; err != nil {
		t.Fatalf("Failed to seed role: %v", err)
	}
	return role
}

func seedBranch(t *testing.T, db *gorm.DB, code, name string) models.Branch {
	t.Helper()
	branch := models.Branch{Code: code, Name: name}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("Failed to seed branch: %v", err)
	}
	return branch
}

func seedUser(t *testing.T, db *gorm.DB, email string, roleID uint, branchID *uint) models.User {
	t.Helper()
	user := models.User{
		Name:         "Test Staff",
		Email:        email,
		PasswordHash: "$2a$10$testhashtesthashtesthashte",
		RoleID:       roleID,
		BranchID:     branchID,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}
	return category
}

func seedMetal(t *testing.T, db *gorm.DB, metalType models.MetalType, purity string) models.Metal {
	t.Helper()
	metal := models.Metal{Type: metalType, Purity: purity}
	if err := db.Create(&metal).Error; err != nil {
		t.Fatalf("Failed to seed metal: %v", err)
	}
	return metal
}

func seedGem(t *testing.T, db *gorm.DB, name string) models.Gem {
	t.Helper()
	gem := models.Gem{Name: name, KaratRate: 1500.00}
	if err := db.Create(&gem).Error; err != nil {
		t.Fatalf("Failed to seed gem: %v", err)
	}
	return gem
}

func seedProduct(t *testing.T, db *gorm.DB, categoryID, metalID uint, name string) models.Product {
	t.Helper()
	product := models.Product{
		CategoryID: categoryID,
		MetalID:    metalID,
		Name:       name,
		Weight:     5.25,
		Cost:       42000.00,
		Quantity:   3,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}

func seedOffer(t *testing.T, db *gorm.DB, slug string) models.SeasonalOffer {
	t.Helper()
	offer := models.SeasonalOffer{
		Slug:     slug,
		Title:    "Festive Offer",
		StartsAt: mustParseTime(t, "2026-10-01T00:00:00Z"),
		EndsAt:   mustParseTime(t, "2026-11-15T00:00:00Z"),
	}
	if err := db.Create(&offer).Error; err != nil {
		t.Fatalf("Failed to seed offer: %v", err)
	}
	return offer
}
