package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/models"
)

// ListTopics returns all forum topics, newest first, with the linked
// celebrity name and reply count.
func (h *Handler) ListTopics(c *gin.Context) {
	rows, err := h.DB.Query(
		`SELECT t.id, t.title, t.celebrity_id, t.author_name, t.content, t.created_at,
		        c.name AS celebrity_name,
		        (SELECT COUNT(*) FROM forum_replies WHERE topic_id = t.id) AS reply_count
		 FROM forum_topics t
		 LEFT JOIN celebrities c ON t.celebrity_id = c.id
		 ORDER BY t.created_at DESC`,
	)
	if err != nil {
		log.Println("[api/forum] database error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	topics := []models.ForumTopic{}
	for rows.Next() {
		topic, err := scanTopic(rows)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		topics = append(topics, topic)
	}

	c.JSON(http.StatusOK, topics)
}

// GetTopic returns one topic with its replies in posting order.
func (h *Handler) GetTopic(c *gin.Context) {
	topicID := c.Param("id")

	row := h.DB.QueryRow(
		`SELECT t.id, t.title, t.celebrity_id, t.author_name, t.content, t.created_at,
		        c.name AS celebrity_name,
		        (SELECT COUNT(*) FROM forum_replies WHERE topic_id = t.id) AS reply_count
		 FROM forum_topics t
		 LEFT JOIN celebrities c ON t.celebrity_id = c.id
		 WHERE t.id = ?`,
		topicID,
	)
	topic, err := scanTopic(row)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	rows, err := h.DB.Query(
		`SELECT id, topic_id, author_name, content, created_at
		 FROM forum_replies WHERE topic_id = ? ORDER BY created_at`,
		topicID,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	defer rows.Close()

	replies := []models.ForumReply{}
	for rows.Next() {
		var (
			reply      models.ForumReply
			authorName sql.NullString
			createdAt  sql.NullString
		)
		if err := rows.Scan(&reply.ID, &reply.TopicID, &authorName, &reply.Content, &createdAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		reply.AuthorName = authorName.String
		reply.CreatedAt = createdAt.String
		replies = append(replies, reply)
	}

	c.JSON(http.StatusOK, gin.H{"topic": topic, "replies": replies})
}

func (h *Handler) CreateTopic(c *gin.Context) {
	var req models.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content required"})
		return
	}

	author := req.AuthorName
	if author == "" {
		author = "Anonymous"
	}

	res, err := h.DB.Exec(
		`INSERT INTO forum_topics (title, celebrity_id, author_name, content) VALUES (?, ?, ?, ?)`,
		req.Title, req.CelebrityID, author, req.Content,
	)
	if err != nil {
		log.Println("[api/forum] topic creation error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create topic"})
		return
	}
	topicID, _ := res.LastInsertId()

	c.JSON(http.StatusOK, gin.H{"success": true, "topic_id": topicID})
}

func (h *Handler) CreateReply(c *gin.Context) {
	topicID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
		return
	}

	var req models.CreateReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Content required"})
		return
	}

	author := req.AuthorName
	if author == "" {
		author = "Anonymous"
	}

	res, err := h.DB.Exec(
		`INSERT INTO forum_replies (topic_id, author_name, content) VALUES (?, ?, ?)`,
		topicID, author, req.Content,
	)
	if err != nil {
		log.Println("[api/forum] reply creation error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reply"})
		return
	}
	replyID, _ := res.LastInsertId()

	c.JSON(http.StatusOK, gin.H{"success": true, "reply_id": replyID})
}

func scanTopic(row interface{ Scan(dest ...any) error }) (models.ForumTopic, error) {
	var (
		topic         models.ForumTopic
		celebrityID   sql.NullInt64
		authorName    sql.NullString
		createdAt     sql.NullString
		celebrityName sql.NullString
	)
	err := row.Scan(
		&topic.ID, &topic.Title, &celebrityID, &authorName, &topic.Content,
		&createdAt, &celebrityName, &topic.ReplyCount,
	)
	if err != nil {
		return models.ForumTopic{}, err
	}
	if celebrityID.Valid {
		topic.CelebrityID = &celebrityID.Int64
	}
	topic.AuthorName = authorName.String
	topic.CreatedAt = createdAt.String
	topic.CelebrityName = celebrityName.String
	return topic, nil
}
