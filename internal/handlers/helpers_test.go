package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"medingen-server/internal/config"
	"medingen-server/internal/models"
	"medingen-server/internal/routes"
)

// newTestServer wires a fresh in-memory database behind the full router.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := models.InitDB(models.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)

	cfg := &config.Config{
		Environment:          "test",
		JWTSecret:            "test-secret",
		JWTExpirationMinutes: 60,
	}

	router := gin.New()
	routes.SetupRoutes(router, db, cfg)
	return router, db
}

// doRequest performs a request against the router. An empty token skips the
// Authorization header.
func doRequest(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

// registerAndLogin creates an account through the API and returns its bearer
// token and user id.
func registerAndLogin(t *testing.T, router *gin.Engine, username, password string) (token, userID string) {
	t.Helper()
	body := `{"username":"` + username + `","password":"` + password + `"}`

	w := doRequest(t, router, http.MethodPost, "/api/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(t, router, http.MethodPost, "/api/login", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
		UserID      string `json:"user_id"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken, resp.UserID
}

// createMedicine inserts a medicine directly through the store.
func createMedicine(t *testing.T, db *gorm.DB, name, description, sideEffects string, rating *float64) models.Medicine {
	t.Helper()
	medicine := models.Medicine{
		Name:        name,
		Description: description,
		SideEffects: sideEffects,
		Price:       10.0,
		Rating:      rating,
	}
	require.NoError(t, db.Create(&medicine).Error)
	return medicine
}

func ratingOf(t *testing.T, db *gorm.DB, medicineID string) *float64 {
	t.Helper()
	var medicine models.Medicine
	require.NoError(t, db.First(&medicine, "id = ?", medicineID).Error)
	return medicine.Rating
}

func floatPtr(f float64) *float64 { return &f }
