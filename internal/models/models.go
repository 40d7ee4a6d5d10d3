package models

// User is a registered account. The token column holds the current bearer
// token; it is rotated on every login and never expires on its own.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	DisplayName  string `json:"display_name"`
	Bio          string `json:"bio"`
	AvatarURL    string `json:"avatar_url"`
	Token        string `json:"-"`
	CreatedAt    string `json:"created_at"`
}

// Celebrity is a directory entry: a curated public celebrity, a user's own
// penpal profile (relationship_type "self") or a private family contact.
type Celebrity struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Category         string `json:"category"`
	ImageURL         string `json:"image_url"`
	Bio              string `json:"bio"`
	FanmailAddress   string `json:"fanmail_address"`
	Verified         bool   `json:"verified"`
	PopularityScore  int    `json:"popularity_score"`
	UserID           *int64 `json:"user_id"`
	IsPublic         bool   `json:"is_public"`
	CreatedByUserID  *int64 `json:"created_by_user_id"`
	RelationshipType string `json:"relationship_type"`
	CreatedAt        string `json:"created_at"`
}

// CreatedBy reports whether the profile was created by the given user.
// userID 0 means an anonymous caller and never matches.
func (c Celebrity) CreatedBy(userID int64) bool {
	return userID != 0 && c.CreatedByUserID != nil && *c.CreatedByUserID == userID
}

// Letter statuses. A letter starts as processing, then moves to sent when the
// fulfillment provider accepts it or pending when it is queued for manual
// handling. It never leaves a terminal state afterwards.
const (
	LetterStatusProcessing = "processing"
	LetterStatusPending    = "pending"
	LetterStatusSent       = "sent"
)

type Letter struct {
	ID                 int64  `json:"id"`
	CelebrityID        int64  `json:"celebrity_id"`
	CustomerEmail      string `json:"customer_email"`
	CustomerName       string `json:"customer_name"`
	Message            string `json:"message"`
	HandwritingStyle   string `json:"handwriting_style"`
	Status             string `json:"status"`
	HandwryttenOrderID string `json:"handwrytten_order_id"`
	CreatedAt          string `json:"created_at"`
	CelebrityName      string `json:"celebrity_name,omitempty"`
}

type ForumTopic struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	CelebrityID   *int64 `json:"celebrity_id"`
	AuthorName    string `json:"author_name"`
	Content       string `json:"content"`
	CreatedAt     string `json:"created_at"`
	CelebrityName string `json:"celebrity_name,omitempty"`
	ReplyCount    int    `json:"reply_count"`
}

type ForumReply struct {
	ID         int64  `json:"id"`
	TopicID    int64  `json:"topic_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}
