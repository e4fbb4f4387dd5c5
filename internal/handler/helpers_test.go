package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ordering-app/config"
	"ordering-app/internal/models"
	"ordering-app/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "123"

// setupTest gives every test a fresh in-memory database, seeded like a real
// boot, and the real router.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	config.AppConfig = &config.Config{
		Server: config.ServerConfig{
			Port:               "0",
			JWTSecret:          "test-secret",
			JWTExpirationHours: 1,
		},
		Defaults: config.DefaultsConfig{
			SeedPassword: testPassword,
			OwnerEmail:   "owner@system.com",
			OrderPrefix:  "ORD",
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // one connection keeps the in-memory DB alive

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.DiscountCode{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))

	database.DB = db
	database.Seed()

	return SetupRouter()
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, "login as %s: %s", email, w.Body.String())
	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	return token
}

func menuItemID(t *testing.T, name string) uint {
	t.Helper()
	var item models.MenuItem
	require.NoError(t, database.DB.Where("name = ?", name).First(&item).Error)
	return item.ID
}

func seededUserID(t *testing.T, email string) uint {
	t.Helper()
	var user models.User
	require.NoError(t, database.DB.Where("email = ?", email).First(&user).Error)
	return user.ID
}
