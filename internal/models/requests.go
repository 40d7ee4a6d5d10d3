package models

type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateLetterRequest mirrors what the front-end posts to /api/letters.
// return_address and sender_name are only forwarded to the fulfillment
// provider, never stored.
type CreateLetterRequest struct {
	CelebrityID      int64  `json:"celebrity_id"`
	CustomerEmail    string `json:"customer_email"`
	CustomerName     string `json:"customer_name"`
	Message          string `json:"message"`
	HandwritingStyle string `json:"handwriting_style"`
	ReturnAddress    string `json:"return_address"`
	SenderName       string `json:"sender_name"`
}

type BecomePenpalRequest struct {
	FanmailAddress string `json:"fanmail_address"`
	Bio            string `json:"bio"`
	Category       string `json:"category"`
	IsPublic       *bool  `json:"is_public"`
}

type AddFamilyMemberRequest struct {
	Name             string `json:"name"`
	FanmailAddress   string `json:"fanmail_address"`
	RelationshipType string `json:"relationship_type"`
	Bio              string `json:"bio"`
}

type CreateTopicRequest struct {
	Title       string `json:"title"`
	CelebrityID *int64 `json:"celebrity_id"`
	AuthorName  string `json:"author_name"`
	Content     string `json:"content"`
}

type CreateReplyRequest struct {
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
}
