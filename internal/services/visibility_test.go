package services

import (
	"errors"
	"testing"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
)

func TestCanViewProfile(t *testing.T) {
	creator := int64(7)
	public := models.Celebrity{ID: 1, IsPublic: true}
	private := models.Celebrity{ID: 2, IsPublic: false, CreatedByUserID: &creator}

	if !CanViewProfile(public, 0) || !CanViewProfile(public, 99) {
		t.Fatal("public profiles must be visible to everyone")
	}
	if CanViewProfile(private, 0) {
		t.Fatal("private profile visible to anonymous caller")
	}
	if CanViewProfile(private, 99) {
		t.Fatal("private profile visible to non-creator")
	}
	if !CanViewProfile(private, creator) {
		t.Fatal("private profile hidden from its creator")
	}

	// A private row with no creator recorded is visible to nobody.
	orphan := models.Celebrity{ID: 3, IsPublic: false}
	if CanViewProfile(orphan, 7) {
		t.Fatal("orphan private profile should not be visible")
	}
}

func TestCanSendTo(t *testing.T) {
	creator := int64(7)
	private := models.Celebrity{ID: 2, IsPublic: false, CreatedByUserID: &creator}

	if CanSendTo(private, 0) || CanSendTo(private, 99) {
		t.Fatal("private recipient must reject strangers")
	}
	if !CanSendTo(private, creator) {
		t.Fatal("creator must be allowed to send")
	}
	if !CanSendTo(models.Celebrity{IsPublic: true}, 0) {
		t.Fatal("public recipient must accept anonymous senders")
	}
}

func TestResolveToken(t *testing.T) {
	database := openTestDB(t)
	userID := insertUser(t, database, "a@example.com", "tok-a")

	got, err := ResolveToken(database, "tok-a")
	if err != nil {
		t.Fatalf("ResolveToken: %v", err)
	}
	if got != userID {
		t.Fatalf("ResolveToken = %d, want %d", got, userID)
	}

	if _, err := ResolveToken(database, "bogus"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("unknown token error = %v, want ErrInvalidToken", err)
	}
	if _, err := ResolveToken(database, ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("empty token error = %v, want ErrInvalidToken", err)
	}
}
