package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/services"
)

// ListCelebrities returns the directory entries visible to the caller:
// everything public, plus the caller's own private profiles when a valid
// token is supplied.
func (h *Handler) ListCelebrities(c *gin.Context) {
	category := c.Query("category")
	search := c.Query("search")

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	userID := h.callerID(c)
	log.Printf("[api/celebrities] category=%q search=%q limit=%d authenticated=%t",
		category, search, limit, userID != 0)

	query := `SELECT ` + services.CelebrityColumns + ` FROM celebrities WHERE is_public = 1`
	args := []any{}
	if userID != 0 {
		// Parentheses matter: the OR must not leak into later AND filters.
		query = `SELECT ` + services.CelebrityColumns + ` FROM celebrities WHERE (is_public = 1 OR created_by_user_id = ?)`
		args = append(args, userID)
	}

	if category != "" && category != "all" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	if search != "" {
		query += ` AND name LIKE ?`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY verified DESC, popularity_score DESC, name LIMIT ?`
	args = append(args, limit)

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		log.Println("[api/celebrities] database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	celebrities := []models.Celebrity{}
	for rows.Next() {
		celebrity, err := services.ScanCelebrity(rows)
		if err != nil {
			log.Println("[api/celebrities] scan error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		celebrities = append(celebrities, celebrity)
	}

	c.JSON(http.StatusOK, celebrities)
}

// GetCelebrity returns one profile. Private profiles answer 404 for anyone
// but their creator, exactly like a nonexistent id.
func (h *Handler) GetCelebrity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Celebrity not found"})
		return
	}

	celebrity, err := services.GetCelebrity(h.DB, id)
	if errors.Is(err, services.ErrRecipientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Celebrity not found"})
		return
	}
	if err != nil {
		log.Println("[api/celebrities] database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !services.CanViewProfile(celebrity, h.callerID(c)) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	c.JSON(http.StatusOK, celebrity)
}
