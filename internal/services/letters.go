package services

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
)

// Fulfiller is the outbound handwriting provider as the letter flow sees it.
type Fulfiller interface {
	SendLetter(ctx context.Context, recipientName, address, message string, opts LetterOptions) (FulfillmentResult, error)
}

// OwnerNotifier tells a penpal profile owner that a letter was queued for
// their address.
type OwnerNotifier interface {
	LetterQueued(ownerEmail, recipientName, senderName string) error
}

// LetterService runs the letter submission flow: validate, authorize,
// persist, then hand off to the fulfillment provider. Fulfillment and
// Notifier are nil when the matching credentials are not configured.
type LetterService struct {
	DB          *sql.DB
	Fulfillment Fulfiller
	Notifier    OwnerNotifier
}

func NewLetterService(database *sql.DB, fulfillment Fulfiller, notifier OwnerNotifier) *LetterService {
	return &LetterService{DB: database, Fulfillment: fulfillment, Notifier: notifier}
}

type SubmitLetterInput struct {
	CelebrityID      int64
	CustomerEmail    string
	CustomerName     string
	Message          string
	HandwritingStyle string
	ReturnAddress    string
	SenderName       string
	// CallerUserID is the resolved identity of the submitting user, 0 when
	// anonymous. Only consulted for private recipients.
	CallerUserID int64
}

type SubmitLetterResult struct {
	LetterID      int64
	Status        string
	OrderID       string
	PreviewURL    string
	RecipientName string
}

// Submit validates and persists one letter request. Validation and
// authorization failures happen before anything is written; once the row
// exists the caller always gets a success, even when the provider call fails.
func (s *LetterService) Submit(ctx context.Context, in SubmitLetterInput) (SubmitLetterResult, error) {
	switch {
	case in.CelebrityID == 0:
		return SubmitLetterResult{}, &MissingFieldError{Field: "celebrity_id"}
	case in.CustomerEmail == "":
		return SubmitLetterResult{}, &MissingFieldError{Field: "customer_email"}
	case in.Message == "":
		return SubmitLetterResult{}, &MissingFieldError{Field: "message"}
	}

	celebrity, err := GetCelebrity(s.DB, in.CelebrityID)
	if err != nil {
		return SubmitLetterResult{}, err
	}

	if !CanSendTo(celebrity, in.CallerUserID) {
		return SubmitLetterResult{}, ErrSendForbidden
	}

	if celebrity.FanmailAddress == "" {
		return SubmitLetterResult{}, ErrNoAddress
	}

	customerName := in.CustomerName
	if customerName == "" {
		customerName = "Anonymous"
	}
	style := in.HandwritingStyle
	if style == "" {
		style = "casual"
	}

	res, err := s.DB.Exec(
		`INSERT INTO letters (celebrity_id, customer_email, customer_name, message, handwriting_style, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		in.CelebrityID, in.CustomerEmail, customerName, in.Message, style, models.LetterStatusProcessing,
	)
	if err != nil {
		return SubmitLetterResult{}, fmt.Errorf("create letter: %w", err)
	}
	letterID, err := res.LastInsertId()
	if err != nil {
		return SubmitLetterResult{}, fmt.Errorf("create letter: %w", err)
	}

	result := SubmitLetterResult{
		LetterID:      letterID,
		RecipientName: celebrity.Name,
	}

	if s.Fulfillment == nil {
		// No provider credentials configured: queue for manual handling.
		s.updateStatus(letterID, models.LetterStatusPending, "")
		result.Status = models.LetterStatusPending
	} else {
		sent, err := s.Fulfillment.SendLetter(ctx, celebrity.Name, celebrity.FanmailAddress, in.Message, LetterOptions{
			HandwritingStyle: style,
			ReturnAddress:    in.ReturnAddress,
			SenderName:       in.SenderName,
		})
		if err != nil {
			// The row already exists; downgrade to pending instead of failing.
			log.Printf("[letters] handwrytten error for letter %d: %v", letterID, err)
			s.updateStatus(letterID, models.LetterStatusPending, "")
			result.Status = models.LetterStatusPending
		} else {
			s.updateStatus(letterID, sent.Status, sent.OrderID)
			result.Status = sent.Status
			result.OrderID = sent.OrderID
			result.PreviewURL = sent.PreviewURL
		}
	}

	s.notifyOwner(celebrity, customerName)
	return result, nil
}

func (s *LetterService) updateStatus(letterID int64, status, orderID string) {
	var err error
	if orderID != "" {
		_, err = s.DB.Exec(`UPDATE letters SET status = ?, handwrytten_order_id = ? WHERE id = ?`, status, orderID, letterID)
	} else {
		_, err = s.DB.Exec(`UPDATE letters SET status = ? WHERE id = ?`, status, letterID)
	}
	if err != nil {
		log.Printf("[letters] failed to update letter %d to %s: %v", letterID, status, err)
	}
}

// notifyOwner emails the owning user of a penpal profile, best effort.
func (s *LetterService) notifyOwner(celebrity models.Celebrity, senderName string) {
	if s.Notifier == nil || celebrity.UserID == nil {
		return
	}
	var ownerEmail string
	err := s.DB.QueryRow(`SELECT email FROM users WHERE id = ?`, *celebrity.UserID).Scan(&ownerEmail)
	if err != nil {
		log.Printf("[letters] owner lookup for celebrity %d failed: %v", celebrity.ID, err)
		return
	}
	if err := s.Notifier.LetterQueued(ownerEmail, celebrity.Name, senderName); err != nil {
		log.Printf("[letters] owner notification failed: %v", err)
	}
}
