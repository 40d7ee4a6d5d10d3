package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/middleware"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/services"
)

// CreateLetter godoc
// @Summary Submit a handwritten letter request
// @Description Persists the letter and forwards it to the fulfillment provider when configured
// @Tags letters
// @Accept json
// @Produce json
// @Param request body models.CreateLetterRequest true "Letter"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/letters [post]
func (h *Handler) CreateLetter(c *gin.Context) {
	var req models.CreateLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	result, err := h.Letters.Submit(c.Request.Context(), services.SubmitLetterInput{
		CelebrityID:      req.CelebrityID,
		CustomerEmail:    req.CustomerEmail,
		CustomerName:     req.CustomerName,
		Message:          req.Message,
		HandwritingStyle: req.HandwritingStyle,
		ReturnAddress:    req.ReturnAddress,
		SenderName:       req.SenderName,
		CallerUserID:     h.callerID(c),
	})
	if err != nil {
		var missing *services.MissingFieldError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		case errors.Is(err, services.ErrRecipientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipient not found"})
		case errors.Is(err, services.ErrSendForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Cannot send to this recipient"})
		case errors.Is(err, services.ErrNoAddress):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No address available for this recipient"})
		default:
			log.Println("[api/letters] error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create letter"})
		}
		return
	}

	body := gin.H{
		"success":   true,
		"letter_id": result.LetterID,
		"status":    result.Status,
	}
	if result.OrderID != "" {
		body["handwrytten_order_id"] = result.OrderID
		body["message"] = fmt.Sprintf("Your letter to %s has been sent!", result.RecipientName)
	} else {
		body["message"] = fmt.Sprintf("Letter to %s queued for processing", result.RecipientName)
	}
	if result.PreviewURL != "" {
		body["preview_url"] = result.PreviewURL
	}

	c.JSON(http.StatusOK, body)
}

// MyLetters lists the letters addressed to the caller's penpal profile,
// newest first. Users without a profile get an empty list.
func (h *Handler) MyLetters(c *gin.Context) {
	userID := middleware.UserID(c)

	var profileID int64
	err := h.DB.QueryRow(`SELECT id FROM celebrities WHERE user_id = ?`, userID).Scan(&profileID)
	if err == sql.ErrNoRows {
		c.JSON(http.StatusOK, []models.Letter{})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	rows, err := h.DB.Query(
		`SELECT l.id, l.celebrity_id, l.customer_email, l.customer_name, l.message,
		        l.handwriting_style, l.status, l.handwrytten_order_id, l.created_at,
		        c.name AS celebrity_name
		 FROM letters l
		 JOIN celebrities c ON l.celebrity_id = c.id
		 WHERE l.celebrity_id = ?
		 ORDER BY l.created_at DESC`,
		profileID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	letters := []models.Letter{}
	for rows.Next() {
		var (
			l            models.Letter
			customerName sql.NullString
			style        sql.NullString
			orderID      sql.NullString
			createdAt    sql.NullString
		)
		if err := rows.Scan(
			&l.ID, &l.CelebrityID, &l.CustomerEmail, &customerName, &l.Message,
			&style, &l.Status, &orderID, &createdAt, &l.CelebrityName,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		l.CustomerName = customerName.String
		l.HandwritingStyle = style.String
		l.HandwryttenOrderID = orderID.String
		l.CreatedAt = createdAt.String
		letters = append(letters, l)
	}

	c.JSON(http.StatusOK, letters)
}
