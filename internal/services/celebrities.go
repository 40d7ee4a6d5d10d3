package services

import (
	"database/sql"
	"fmt"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
)

// CelebrityColumns is the canonical select list for celebrity rows; keep in
// sync with ScanCelebrity.
const CelebrityColumns = `id, name, category, image_url, bio, fanmail_address,
	verified, popularity_score, user_id, is_public, created_by_user_id,
	relationship_type, created_at`

// RowScanner is satisfied by both *sql.Row and *sql.Rows.
type RowScanner interface {
	Scan(dest ...any) error
}

// ScanCelebrity maps one celebrity row, folding NULL columns into zero values
// or nil pointers.
func ScanCelebrity(row RowScanner) (models.Celebrity, error) {
	var (
		c                models.Celebrity
		category         sql.NullString
		imageURL         sql.NullString
		bio              sql.NullString
		fanmailAddress   sql.NullString
		userID           sql.NullInt64
		createdByUserID  sql.NullInt64
		relationshipType sql.NullString
		createdAt        sql.NullString
	)
	err := row.Scan(
		&c.ID, &c.Name, &category, &imageURL, &bio, &fanmailAddress,
		&c.Verified, &c.PopularityScore, &userID, &c.IsPublic,
		&createdByUserID, &relationshipType, &createdAt,
	)
	if err != nil {
		return models.Celebrity{}, err
	}

	c.Category = category.String
	c.ImageURL = imageURL.String
	c.Bio = bio.String
	c.FanmailAddress = fanmailAddress.String
	c.RelationshipType = relationshipType.String
	c.CreatedAt = createdAt.String
	if userID.Valid {
		c.UserID = &userID.Int64
	}
	if createdByUserID.Valid {
		c.CreatedByUserID = &createdByUserID.Int64
	}
	return c, nil
}

// GetCelebrity loads a single profile by id. Unknown ids yield
// ErrRecipientNotFound.
func GetCelebrity(database *sql.DB, id int64) (models.Celebrity, error) {
	row := database.QueryRow(`SELECT `+CelebrityColumns+` FROM celebrities WHERE id = ?`, id)
	c, err := ScanCelebrity(row)
	if err == sql.ErrNoRows {
		return models.Celebrity{}, ErrRecipientNotFound
	}
	if err != nil {
		return models.Celebrity{}, fmt.Errorf("load celebrity: %w", err)
	}
	return c, nil
}
