package handlers

import (
	"database/sql"
	"net/http"
	"testing"
)

func countRows(t *testing.T, database *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// A letter to a public profile with a valid address and no fulfillment
// credentials is accepted and durably queued as pending.
func TestCreateLetterQueuedWithoutCredentials(t *testing.T) {
	router, database := newTestServer(t)
	celebID := seedCelebrity(t, database, "Jane Doe", "actors", 50, true)

	rec := request(t, router, http.MethodPost, "/api/letters", "", map[string]any{
		"celebrity_id":   celebID,
		"customer_email": "fan@example.com",
		"message":        "You are my favorite!",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	body := decodeObject(t, rec)
	if body["success"] != true {
		t.Fatalf("success = %v, want true", body["success"])
	}
	if body["status"] != "pending" {
		t.Fatalf("status = %v, want pending", body["status"])
	}
	if _, ok := body["letter_id"]; !ok {
		t.Fatal("response missing letter_id")
	}

	var stored string
	err := database.QueryRow(`SELECT status FROM letters WHERE id = ?`, int64(body["letter_id"].(float64))).Scan(&stored)
	if err != nil {
		t.Fatalf("load stored letter: %v", err)
	}
	if stored != "pending" {
		t.Fatalf("stored status = %q, want pending", stored)
	}
}

func TestCreateLetterMissingMessage(t *testing.T) {
	router, database := newTestServer(t)
	celebID := seedCelebrity(t, database, "Jane Doe", "actors", 50, true)

	rec := request(t, router, http.MethodPost, "/api/letters", "", map[string]any{
		"celebrity_id":   celebID,
		"customer_email": "fan@example.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if n := countRows(t, database, "letters"); n != 0 {
		t.Fatalf("letters table has %d rows after rejected submission, want 0", n)
	}
}

func TestCreateLetterUnknownRecipient(t *testing.T) {
	router, _ := newTestServer(t)

	rec := request(t, router, http.MethodPost, "/api/letters", "", map[string]any{
		"celebrity_id":   12345,
		"customer_email": "fan@example.com",
		"message":        "hello?",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestCreateLetterPrivateRecipientForbidden(t *testing.T) {
	router, _ := newTestServer(t)

	tokenA, _ := registerUser(t, router, "a@example.com")
	tokenB, _ := registerUser(t, router, "b@example.com")

	rec := request(t, router, http.MethodPost, "/api/add-family-member", tokenA, map[string]any{
		"name":            "Grandma",
		"fanmail_address": "Grandma\n5 Elm St\nSpringfield, IL 62704",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("add-family-member status = %d, body %s", rec.Code, rec.Body.String())
	}
	celebID := decodeObject(t, rec)["celebrity_id"]

	letter := map[string]any{
		"celebrity_id":   celebID,
		"customer_email": "someone@example.com",
		"message":        "hi grandma",
	}

	for _, token := range []string{"", tokenB} {
		rec = request(t, router, http.MethodPost, "/api/letters", token, letter)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("token %q: status = %d, want 403", token, rec.Code)
		}
	}

	rec = request(t, router, http.MethodPost, "/api/letters", tokenA, letter)
	if rec.Code != http.StatusOK {
		t.Fatalf("creator send status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestMyLetters(t *testing.T) {
	router, _ := newTestServer(t)

	token, _ := registerUser(t, router, "penpal@example.com")

	// No profile yet: empty list, not an error.
	rec := request(t, router, http.MethodGet, "/api/my-letters", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeArray(t, rec); len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}

	rec = request(t, router, http.MethodPost, "/api/become-penpal", token, map[string]any{
		"fanmail_address": "Penpal\n9 Letter Ln\nSpringfield, IL 62704",
		"is_public":       true,
	})
	celebID := decodeObject(t, rec)["celebrity_id"]

	rec = request(t, router, http.MethodPost, "/api/letters", "", map[string]any{
		"celebrity_id":   celebID,
		"customer_email": "fan@example.com",
		"customer_name":  "A Fan",
		"message":        "hello penpal",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("letter status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = request(t, router, http.MethodGet, "/api/my-letters", token, nil)
	letters := decodeArray(t, rec)
	if len(letters) != 1 {
		t.Fatalf("got %d letters, want 1", len(letters))
	}
	if letters[0]["message"] != "hello penpal" || letters[0]["customer_name"] != "A Fan" {
		t.Fatalf("unexpected letter: %v", letters[0])
	}
	if letters[0]["celebrity_name"] == "" {
		t.Fatal("letter missing joined celebrity_name")
	}
}
