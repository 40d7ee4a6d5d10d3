package handlers

import (
	"fmt"
	"net/http"
	"testing"
)

func TestBecomePenpalCreateAndUpdate(t *testing.T) {
	router, _ := newTestServer(t)
	token, userID := registerUser(t, router, "penpal@example.com")

	rec := request(t, router, http.MethodPost, "/api/become-penpal", token, map[string]any{
		"fanmail_address": "Penpal\n9 Letter Ln\nSpringfield, IL 62704",
		"bio":             "I answer every letter",
		"is_public":       true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	created := decodeObject(t, rec)
	if created["is_public"] != true {
		t.Fatalf("is_public = %v, want true", created["is_public"])
	}
	celebrityID := int64(created["celebrity_id"].(float64))

	// A second call updates in place instead of creating a duplicate.
	rec = request(t, router, http.MethodPost, "/api/become-penpal", token, map[string]any{
		"fanmail_address": "Penpal\n10 New Rd\nSpringfield, IL 62704",
		"is_public":       false,
	})
	updated := decodeObject(t, rec)
	if int64(updated["celebrity_id"].(float64)) != celebrityID {
		t.Fatalf("update created a new profile: %v vs %d", updated["celebrity_id"], celebrityID)
	}

	rec = request(t, router, http.MethodGet, "/api/my-penpal-profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("my-penpal-profile status = %d", rec.Code)
	}
	profile := decodeObject(t, rec)
	if profile["fanmail_address"] != "Penpal\n10 New Rd\nSpringfield, IL 62704" {
		t.Fatalf("address not updated: %v", profile["fanmail_address"])
	}
	if profile["is_public"] != false {
		t.Fatalf("is_public = %v, want false after update", profile["is_public"])
	}
	if profile["user_id"] != float64(userID) {
		t.Fatalf("user_id = %v, want %d", profile["user_id"], userID)
	}
	if profile["relationship_type"] != "self" {
		t.Fatalf("relationship_type = %v, want self", profile["relationship_type"])
	}
}

func TestBecomePenpalRequiresAddress(t *testing.T) {
	router, _ := newTestServer(t)
	token, _ := registerUser(t, router, "penpal@example.com")

	rec := request(t, router, http.MethodPost, "/api/become-penpal", token, map[string]any{
		"bio": "no address here",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	rec = request(t, router, http.MethodPost, "/api/become-penpal", "", map[string]any{
		"fanmail_address": "Penpal\n9 Letter Ln",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous status = %d, want 401", rec.Code)
	}
}

func TestMyPenpalProfileNull(t *testing.T) {
	router, _ := newTestServer(t)
	token, _ := registerUser(t, router, "new@example.com")

	rec := request(t, router, http.MethodGet, "/api/my-penpal-profile", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "null" {
		t.Fatalf("body = %q, want null", body)
	}
}

func TestFamilyMembers(t *testing.T) {
	router, _ := newTestServer(t)
	tokenA, _ := registerUser(t, router, "a@example.com")
	tokenB, _ := registerUser(t, router, "b@example.com")

	rec := request(t, router, http.MethodPost, "/api/add-family-member", tokenA, map[string]any{
		"name":              "Grandma",
		"fanmail_address":   "Grandma\n5 Elm St\nSpringfield, IL 62704",
		"relationship_type": "grandmother",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	memberID := int64(decodeObject(t, rec)["celebrity_id"].(float64))

	rec = request(t, router, http.MethodGet, "/api/my-family-members", tokenA, nil)
	members := decodeArray(t, rec)
	if len(members) != 1 {
		t.Fatalf("got %d members, want 1", len(members))
	}
	if members[0]["is_public"] != false {
		t.Fatal("family members must always be private")
	}
	if members[0]["bio"] != "grandmother of a" {
		t.Fatalf("bio = %v, want generated default", members[0]["bio"])
	}

	// Another user cannot see or delete them.
	rec = request(t, router, http.MethodGet, "/api/my-family-members", tokenB, nil)
	if got := decodeArray(t, rec); len(got) != 0 {
		t.Fatalf("family members leaked to other user: %v", got)
	}

	path := fmt.Sprintf("/api/family-member/%d", memberID)
	rec = request(t, router, http.MethodDelete, path, tokenB, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign delete status = %d, want 404", rec.Code)
	}

	rec = request(t, router, http.MethodDelete, path, tokenA, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = request(t, router, http.MethodGet, "/api/my-family-members", tokenA, nil)
	if got := decodeArray(t, rec); len(got) != 0 {
		t.Fatalf("member still listed after delete: %v", got)
	}
}

func TestAddFamilyMemberValidation(t *testing.T) {
	router, _ := newTestServer(t)
	token, _ := registerUser(t, router, "a@example.com")

	rec := request(t, router, http.MethodPost, "/api/add-family-member", token, map[string]any{
		"name": "No Address",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteCannotRemovePenpalProfile(t *testing.T) {
	router, _ := newTestServer(t)
	token, _ := registerUser(t, router, "penpal@example.com")

	rec := request(t, router, http.MethodPost, "/api/become-penpal", token, map[string]any{
		"fanmail_address": "Penpal\n9 Letter Ln\nSpringfield, IL 62704",
	})
	celebrityID := int64(decodeObject(t, rec)["celebrity_id"].(float64))

	// The "self" profile is not deletable through the family-member route.
	path := fmt.Sprintf("/api/family-member/%d", celebrityID)
	rec = request(t, router, http.MethodDelete, path, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
