package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/middleware"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/services"
)

type Handler struct {
	DB      *sql.DB
	Letters *services.LetterService
}

func NewHandler(database *sql.DB, letters *services.LetterService) *Handler {
	return &Handler{DB: database, Letters: letters}
}

func (h *Handler) SetupRoutes(router *gin.Engine) {

	router.GET("/health", h.Health)

	api := router.Group("/api")

	// Public routes. Celebrity and letter routes take an optional bearer
	// token: a valid one widens visibility, anything else means anonymous.
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.GET("/celebrities", h.ListCelebrities)
	api.GET("/celebrities/:id", h.GetCelebrity)
	api.POST("/letters", h.CreateLetter)
	api.GET("/forum/topics", h.ListTopics)
	api.GET("/forum/topics/:id", h.GetTopic)
	api.POST("/forum/topics", h.CreateTopic)
	api.POST("/forum/topics/:id/replies", h.CreateReply)

	// Routes that require a valid token.
	authorized := api.Group("/")
	authorized.Use(middleware.Auth(h.DB))
	{
		authorized.GET("/auth/me", h.Me)
		authorized.POST("/become-penpal", h.BecomePenpal)
		authorized.POST("/add-family-member", h.AddFamilyMember)
		authorized.GET("/my-penpal-profile", h.MyPenpalProfile)
		authorized.GET("/my-family-members", h.MyFamilyMembers)
		authorized.DELETE("/family-member/:id", h.DeleteFamilyMember)
		authorized.GET("/my-letters", h.MyLetters)
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// callerID resolves the optional bearer token on public routes. Any missing
// or unknown token degrades to an anonymous caller rather than an error.
func (h *Handler) callerID(c *gin.Context) int64 {
	token := middleware.BearerToken(c)
	if token == "" {
		return 0
	}
	userID, err := services.ResolveToken(h.DB, token)
	if err != nil {
		return 0
	}
	return userID
}
