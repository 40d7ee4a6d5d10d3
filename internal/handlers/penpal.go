package handlers

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/middleware"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/services"
)

// BecomePenpal creates or updates the caller's own penpal entry in the
// directory. A private profile is reachable only by its creator.
func (h *Handler) BecomePenpal(c *gin.Context) {
	userID := middleware.UserID(c)

	var req models.BecomePenpalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.FanmailAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address required"})
		return
	}

	isPublic := req.IsPublic != nil && *req.IsPublic
	category := req.Category
	if category == "" {
		category = "fan"
	}

	var displayName sql.NullString
	if err := h.DB.QueryRow(`SELECT display_name FROM users WHERE id = ?`, userID).Scan(&displayName); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var existingID int64
	err := h.DB.QueryRow(`SELECT id FROM celebrities WHERE user_id = ?`, userID).Scan(&existingID)
	switch {
	case err == nil:
		_, err = h.DB.Exec(
			`UPDATE celebrities SET fanmail_address = ?, bio = ?, category = ?, is_public = ? WHERE user_id = ?`,
			req.FanmailAddress, req.Bio, category, isPublic, userID,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"celebrity_id": existingID,
			"is_public":    isPublic,
			"message":      penpalMessage(isPublic, true),
		})
	case err == sql.ErrNoRows:
		res, err := h.DB.Exec(
			`INSERT INTO celebrities (name, category, bio, fanmail_address, user_id, verified, popularity_score, is_public, created_by_user_id, relationship_type)
			 VALUES (?, ?, ?, ?, ?, 0, 0, ?, ?, 'self')`,
			displayName.String, category, req.Bio, req.FanmailAddress, userID, isPublic, userID,
		)
		if err != nil {
			log.Println("[api/become-penpal] creation error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create penpal profile"})
			return
		}
		celebrityID, _ := res.LastInsertId()
		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"celebrity_id": celebrityID,
			"is_public":    isPublic,
			"message":      penpalMessage(isPublic, false),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

func penpalMessage(isPublic, updated bool) string {
	switch {
	case isPublic && updated:
		return "Public profile updated!"
	case updated:
		return "Private profile updated - only you can send letters to this address."
	case isPublic:
		return "Welcome to Celebrity Penpal! Your public profile is live."
	default:
		return "Private profile created - only you can send letters here."
	}
}

// AddFamilyMember adds a private contact (always is_public = 0) to the
// caller's address book.
func (h *Handler) AddFamilyMember(c *gin.Context) {
	userID := middleware.UserID(c)

	var req models.AddFamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Name == "" || req.FanmailAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and address required"})
		return
	}

	relationship := req.RelationshipType
	if relationship == "" {
		relationship = "family"
	}

	bio := req.Bio
	if bio == "" {
		var displayName sql.NullString
		_ = h.DB.QueryRow(`SELECT display_name FROM users WHERE id = ?`, userID).Scan(&displayName)
		label := req.RelationshipType
		if label == "" {
			label = "Family member"
		}
		bio = fmt.Sprintf("%s of %s", label, displayName.String)
	}

	res, err := h.DB.Exec(
		`INSERT INTO celebrities (name, category, bio, fanmail_address, user_id, verified, popularity_score, is_public, created_by_user_id, relationship_type)
		 VALUES (?, 'family', ?, ?, NULL, 0, 0, 0, ?, ?)`,
		req.Name, bio, req.FanmailAddress, userID, relationship,
	)
	if err != nil {
		log.Println("[api/add-family-member] creation error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add family member"})
		return
	}
	celebrityID, _ := res.LastInsertId()

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"celebrity_id": celebrityID,
		"name":         req.Name,
		"message":      fmt.Sprintf("%s has been added to your private address book! You can now send them handwritten letters anytime.", req.Name),
	})
}

// MyPenpalProfile returns the caller's penpal entry, or null when they have
// not created one.
func (h *Handler) MyPenpalProfile(c *gin.Context) {
	userID := middleware.UserID(c)

	row := h.DB.QueryRow(
		`SELECT `+services.CelebrityColumns+` FROM celebrities WHERE user_id = ?`, userID,
	)
	profile, err := services.ScanCelebrity(row)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// MyFamilyMembers lists the private contacts the caller has created.
func (h *Handler) MyFamilyMembers(c *gin.Context) {
	userID := middleware.UserID(c)

	rows, err := h.DB.Query(
		`SELECT `+services.CelebrityColumns+` FROM celebrities
		 WHERE created_by_user_id = ? AND relationship_type != 'self'
		 ORDER BY name`,
		userID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	members := []models.Celebrity{}
	for rows.Next() {
		member, err := services.ScanCelebrity(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		members = append(members, member)
	}

	c.JSON(http.StatusOK, members)
}

// DeleteFamilyMember removes a private contact. The SQL guards ownership and
// keeps "self" penpal profiles undeletable through this route.
func (h *Handler) DeleteFamilyMember(c *gin.Context) {
	userID := middleware.UserID(c)

	memberID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Family member not found"})
		return
	}

	res, err := h.DB.Exec(
		`DELETE FROM celebrities WHERE id = ? AND created_by_user_id = ? AND relationship_type != 'self'`,
		memberID, userID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete"})
		return
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Family member not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Family member removed"})
}
