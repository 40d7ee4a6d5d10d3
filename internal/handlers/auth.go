package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/middleware"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/services"
)

// Register godoc
// @Summary Register a new user
// @Description Creates an account and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = strings.Split(req.Email, "@")[0]
	}

	hash, err := services.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	token, err := services.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	res, err := h.DB.Exec(
		`INSERT INTO users (email, password_hash, display_name, token) VALUES (?, ?, ?, ?)`,
		req.Email, hash, displayName, token,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		log.Println("[auth] registration error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}
	userID, _ := res.LastInsertId()

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"user_id":      userID,
		"token":        token,
		"email":        req.Email,
		"display_name": displayName,
	})
}

// Login godoc
// @Summary Log in
// @Description Verifies credentials and rotates the bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	var (
		userID       int64
		passwordHash string
		displayName  sql.NullString
	)
	err := h.DB.QueryRow(
		`SELECT id, password_hash, display_name FROM users WHERE email = ?`,
		req.Email,
	).Scan(&userID, &passwordHash, &displayName)
	if err != nil || !services.CheckPassword(passwordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	// Each login issues a fresh token, invalidating the previous one.
	token, err := services.GenerateToken()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if _, err := h.DB.Exec(`UPDATE users SET token = ? WHERE id = ?`, token, userID); err != nil {
		log.Println("[auth] token update error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"user_id":      userID,
		"token":        token,
		"email":        req.Email,
		"display_name": displayName.String,
	})
}

// Me returns the profile of the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.UserID(c)

	var (
		id          int64
		email       string
		displayName sql.NullString
		bio         sql.NullString
		avatarURL   sql.NullString
	)
	err := h.DB.QueryRow(
		`SELECT id, email, display_name, bio, avatar_url FROM users WHERE id = ?`,
		userID,
	).Scan(&id, &email, &displayName, &bio, &avatarURL)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           id,
		"email":        email,
		"display_name": displayName.String,
		"bio":          bio.String,
		"avatar_url":   avatarURL.String,
	})
}
