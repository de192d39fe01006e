package handlers

import (
	"net/http"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/client"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves the client roster.
type ClientHandler struct {
	ClientSvc client.ClientService
}

// ListClientsHandler handles GET /api/clients. An optional ?q= query switches
// to a name/phone search.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		clients, err := h.ClientSvc.SearchClients(q)
		if err != nil {
			utils.GetLogger().Error("Client search failed", zap.String("query", q), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, clients)
		return
	}

	clients, err := h.ClientSvc.GetAllClients()
	if err != nil {
		utils.GetLogger().Error("Failed to list clients", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetClientHandler handles GET /api/clients/:id.
func (h *ClientHandler) GetClientHandler(c *gin.Context) {
	id := c.Param("id")
	cl, err := h.ClientSvc.GetClientByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cl)
}

// CreateClientHandler handles POST /api/clients.
func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid client payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.ClientSvc.CreateClient(&req)
	if err != nil {
		logger.Error("Failed to create client", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateClientHandler handles PUT /api/clients/:id.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid client payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.ClientSvc.UpdateClient(&req)
	if err != nil {
		logger.Error("Failed to update client", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClientHandler handles DELETE /api/clients/:id.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.ClientSvc.DeleteClient(id); err != nil {
		utils.GetLogger().Error("Failed to delete client", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
