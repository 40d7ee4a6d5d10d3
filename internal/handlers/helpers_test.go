package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/db"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/services"
)

// newTestServer spins up the full route table over an in-memory database,
// with fulfillment and notifications unconfigured.
func newTestServer(t *testing.T) (*gin.Engine, *sql.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.Connect(":memory:")
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	h := NewHandler(database, services.NewLetterService(database, nil, nil))
	router := gin.New()
	h.SetupRoutes(router)
	return router, database
}

func request(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func decodeArray(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

// registerUser registers through the real endpoint and returns the issued
// token and user id.
func registerUser(t *testing.T, router http.Handler, email string) (string, int64) {
	t.Helper()
	rec := request(t, router, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("register %s: status %d body %s", email, rec.Code, rec.Body.String())
	}
	body := decodeObject(t, rec)
	return body["token"].(string), int64(body["user_id"].(float64))
}
