package handlers

import (
	"net/http"
	"strings"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	ai "github.com/pros100kyiv/HUBbase-sub001/services/intelligence"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the conversational assistant.
type AIHandler struct {
	AISvc ai.AIService
}

// ChatHandler handles POST /api/ai/chat. Conversation history is keyed by the
// signed-in staff member so each account keeps its own thread.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.AIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid AI chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}
	req.UserID = c.GetString("staffID")

	resp, err := h.AISvc.ProcessUserInput(c, req)
	if err != nil {
		logger.Error("AI chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Assistant unavailable: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearChatHandler handles DELETE /api/ai/chat. It wipes the caller's stored
// conversation history.
func (h *AIHandler) ClearChatHandler(c *gin.Context) {
	staffID := c.GetString("staffID")
	if err := h.AISvc.ClearConversation(c, staffID); err != nil {
		utils.GetLogger().Error("Failed to clear conversation", zap.String("staffID", staffID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Conversation cleared"})
}
