package services

import (
	"database/sql"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
)

// ResolveToken maps a bearer token to a user id. A missing or unknown token
// yields ErrInvalidToken; the lookup itself never mutates state.
func ResolveToken(database *sql.DB, token string) (int64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	var id int64
	err := database.QueryRow(`SELECT id FROM users WHERE token = ?`, token).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, ErrInvalidToken
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CanViewProfile decides single-record read access. Private profiles are
// readable only by their creator; everyone else must receive the same
// not-found response as for a nonexistent id so their existence never leaks.
func CanViewProfile(c models.Celebrity, userID int64) bool {
	return c.IsPublic || c.CreatedBy(userID)
}

// CanSendTo decides whether a letter may be created against the profile.
// Public profiles accept letters from anyone, private ones only from their
// creator.
func CanSendTo(c models.Celebrity, userID int64) bool {
	return c.IsPublic || c.CreatedBy(userID)
}
