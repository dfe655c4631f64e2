package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"bevgenie-be/internal/bootstrap"
	"bevgenie-be/internal/config"
	"bevgenie-be/internal/dto"
	"bevgenie-be/internal/server"
	"bevgenie-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response, data interface{}) envelope {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("Failed to decode envelope from %s: %v", string(body), err)
	}
	if data != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("Failed to decode data: %v", err)
		}
	}
	return env
}

func sendChat(t *testing.T, app *fiber.App, sessionID, message string) (*http.Response, dto.SendChatResponse) {
	t.Helper()
	payload, _ := json.Marshal(dto.SendChatRequest{Message: message})
	req := httptest.NewRequest("POST", "/api/chat/v1", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Id", sessionID)

	resp, err := app.Test(req, 60000)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	var chatRes dto.SendChatResponse
	if resp.StatusCode == 200 {
		decodeEnvelope(t, resp, &chatRes)
	}
	return resp, chatRes
}

// TestChatFlow drives a full anonymous visitor conversation against the real
// stack: DB, event bus and the live model API.
func TestChatFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
	}
	if os.Getenv("DB_CONNECTION_STRING") == "" || os.Getenv("GOOGLE_GEMINI_API_KEY") == "" {
		t.Skip("DB_CONNECTION_STRING or GOOGLE_GEMINI_API_KEY not set, skipping integration test")
	}

	cfg := config.Load()
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		t.Fatalf("Failed to start consumer: %v", err)
	}

	srv := server.New(cfg, container)
	app := srv.GetApp()

	sessionID := uuid.NewString()

	t.Run("greeting short-circuits without persona movement", func(t *testing.T) {
		resp, chatRes := sendChat(t, app, sessionID, "hi")
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, sessionID, chatRes.SessionId)
		assert.NotEmpty(t, chatRes.Reply)
		assert.False(t, chatRes.ShouldShowPage)
	})

	t.Run("substantive message classifies and accumulates", func(t *testing.T) {
		resp, chatRes := sendChat(t, app, sessionID,
			"I run field sales for a craft brewery and we struggle to prove ROI on retail execution")
		assert.Equal(t, 200, resp.StatusCode)
		assert.NotEmpty(t, chatRes.Reply)
		assert.Equal(t, 1, chatRes.MessageCount)
		assert.NotEqual(t, "general_question", chatRes.Intent)
		if assert.NotNil(t, chatRes.Persona) {
			assert.Equal(t, "sales", chatRes.Persona.FunctionalRole)
			assert.Equal(t, 1, chatRes.Persona.TotalInteractions)
			assert.NotEmpty(t, chatRes.Persona.PainPoints)
		}
	})

	t.Run("history returns the persisted turns", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/chat/v1", nil)
		req.Header.Set("X-Session-Id", sessionID)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var historyRes dto.GetChatHistoryResponse
		decodeEnvelope(t, resp, &historyRes)
		assert.Equal(t, sessionID, historyRes.SessionId)
		assert.GreaterOrEqual(t, historyRes.MessageCount, 1)
		assert.GreaterOrEqual(t, len(historyRes.Messages), 2)
	})

	t.Run("session reset erases everything", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/chat/v1", nil)
		req.Header.Set("X-Session-Id", sessionID)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		req = httptest.NewRequest("GET", "/api/chat/v1", nil)
		req.Header.Set("X-Session-Id", sessionID)
		resp, err = app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("oversized message is rejected", func(t *testing.T) {
		long := bytes.Repeat([]byte("a"), 5100)
		payload, _ := json.Marshal(dto.SendChatRequest{Message: string(long)})
		req := httptest.NewRequest("POST", "/api/chat/v1", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Session-Id", sessionID)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	})
}
