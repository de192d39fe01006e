package handlers

import (
	"net/http"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/inbox"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InboxHandler serves the client-message inbox.
type InboxHandler struct {
	InboxSvc inbox.InboxService
}

// ListMessagesHandler handles GET /api/inbox. ?unread=true narrows to
// messages nobody has opened yet.
func (h *InboxHandler) ListMessagesHandler(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	msgs, err := h.InboxSvc.ListMessages(unreadOnly)
	if err != nil {
		utils.GetLogger().Error("Failed to list messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// ReceiveMessageHandler handles POST /api/inbox. This endpoint is public so
// the booking widget can post without a staff session.
func (h *InboxHandler) ReceiveMessageHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Message
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid message payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.InboxSvc.ReceiveMessage(&req)
	if err != nil {
		logger.Error("Failed to store message", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// MarkReadHandler handles PATCH /api/inbox/:id/read.
func (h *InboxHandler) MarkReadHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.InboxSvc.MarkRead(id); err != nil {
		utils.GetLogger().Error("Failed to mark message read", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked read"})
}

// ReplyHandler handles POST /api/inbox/:id/reply. The reply text is stored
// on the message; delivery happens outside this system.
func (h *InboxHandler) ReplyHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.InboxSvc.Reply(id, req.Text); err != nil {
		utils.GetLogger().Error("Failed to store reply", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reply stored"})
}

// DeleteMessageHandler handles DELETE /api/inbox/:id.
func (h *InboxHandler) DeleteMessageHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.InboxSvc.DeleteMessage(id); err != nil {
		utils.GetLogger().Error("Failed to delete message", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
