package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamehub-be/internal/apperrors"
	"gamehub-be/internal/models"
	"gamehub-be/internal/service"
)

type ChatController struct {
	chatService service.ChatService
}

func NewChatController(chatService service.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Recommend handles POST /api/recommend
func (cc *ChatController) Recommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reply, err := cc.chatService.Recommend(c.Request.Context(), req.UserMessage)
	if err != nil {
		cc.writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

// Support handles POST /api/support
func (cc *ChatController) Support(c *gin.Context) {
	var req models.SupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	reply, err := cc.chatService.Support(c.Request.Context(), req.Message)
	if err != nil {
		cc.writeChatError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Reply: reply})
}

// writeChatError maps chat failures to responses. Gateway errors get
// their sentinel message; anything else is a storage-level fault and
// stays generic.
func (cc *ChatController) writeChatError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrGateway) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}
	log.Printf("ERROR: chat request failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Something went wrong",
	})
}
