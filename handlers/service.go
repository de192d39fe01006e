package handlers

import (
	"net/http"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/catalog"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the price list.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
}

// ListServicesHandler handles GET /api/services. ?active=true narrows to
// currently offered services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	services, err := h.CatalogSvc.GetAllServices(activeOnly)
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	id := c.Param("id")
	svc, err := h.CatalogSvc.GetServiceByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateServiceHandler handles POST /api/services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.CatalogSvc.CreateService(&req)
	if err != nil {
		logger.Error("Failed to create service", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateServiceHandler handles PUT /api/services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Service
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.CatalogSvc.UpdateService(&req)
	if err != nil {
		logger.Error("Failed to update service", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteServiceHandler handles DELETE /api/services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.CatalogSvc.DeleteService(id); err != nil {
		utils.GetLogger().Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}
