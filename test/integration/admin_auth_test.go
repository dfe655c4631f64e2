package integration

import (
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"bevgenie-be/internal/bootstrap"
	"bevgenie-be/internal/config"
	"bevgenie-be/internal/server"
	"bevgenie-be/pkg/database"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, role string, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "ops-tester",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func TestAdminAuth(t *testing.T) {
	// Load .env from root (2 levels up) because tests run in package dir
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" {
		t.Skip("DB_CONNECTION_STRING not set, skipping integration test")
	}
	t.Setenv("JWT_SECRET", "integration-test-secret")

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	t.Run("missing token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/v1/logs", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/v1/logs", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode)
	})

	t.Run("non-admin role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/v1/logs", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "viewer", "integration-test-secret"))
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 403, resp.StatusCode)
	})

	t.Run("admin token reads logs", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/v1/logs?limit=5", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", "integration-test-secret"))
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("admin token lists personas", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/v1/personas", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", "integration-test-secret"))
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("admin token lists filtered signal events", func(t *testing.T) {
		since := time.Now().Add(-24 * time.Hour).UTC().Format(time.RFC3339)
		req := httptest.NewRequest("GET", "/api/admin/v1/signals?vector=pain_point&since="+since, nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", "integration-test-secret"))
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("bad signal filter is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/admin/v1/signals?vector=bogus", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "admin", "integration-test-secret"))
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}
