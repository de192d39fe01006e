package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/master"
	"github.com/pros100kyiv/HUBbase-sub001/services/schedule"
	"github.com/pros100kyiv/HUBbase-sub001/services/storage"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MasterHandler serves staff (master) records and their schedules.
type MasterHandler struct {
	MasterSvc  master.MasterService
	StorageSvc storage.StorageService
}

// ListMastersHandler handles GET /api/masters.
func (h *MasterHandler) ListMastersHandler(c *gin.Context) {
	masters, err := h.MasterSvc.GetAllMasters()
	if err != nil {
		utils.GetLogger().Error("Failed to list masters", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, masters)
}

// GetMasterHandler handles GET /api/masters/:id.
func (h *MasterHandler) GetMasterHandler(c *gin.Context) {
	id := c.Param("id")
	m, err := h.MasterSvc.GetMasterByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, m)
}

// CreateMasterHandler handles POST /api/masters.
func (h *MasterHandler) CreateMasterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Master
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid master payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.MasterSvc.CreateMaster(&req)
	if err != nil {
		logger.Error("Failed to create master", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateMasterHandler handles PUT /api/masters/:id.
func (h *MasterHandler) UpdateMasterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Master
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid master payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.MasterSvc.UpdateMaster(&req)
	if err != nil {
		logger.Error("Failed to update master", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteMasterHandler handles DELETE /api/masters/:id.
func (h *MasterHandler) DeleteMasterHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.MasterSvc.DeleteMaster(id); err != nil {
		utils.GetLogger().Error("Failed to delete master", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Master deleted"})
}

// GetDayScheduleHandler handles GET /api/masters/:id/schedule?date=YYYY-MM-DD.
// It returns the effective window for that date, with overrides applied.
func (h *MasterHandler) GetDayScheduleHandler(c *gin.Context) {
	id := c.Param("id")
	m, err := h.MasterSvc.GetMasterByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	date := schedule.NormalizeDate(c.Query("date"), time.Now())
	day := schedule.ResolveDay(m, date)
	c.JSON(http.StatusOK, gin.H{
		"masterId": m.ID,
		"date":     date,
		"day":      day,
	})
}

// UpdateWorkingHoursHandler handles PUT /api/masters/:id/working-hours.
// The body carries the full weekly schedule; partial edits are done client-side.
func (h *MasterHandler) UpdateWorkingHoursHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		WorkingHours string `json:"workingHours" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.MasterSvc.UpdateWorkingHours(id, req.WorkingHours); err != nil {
		utils.GetLogger().Error("Failed to update working hours", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Working hours updated"})
}

// UpdateOverridesHandler handles PUT /api/masters/:id/overrides.
func (h *MasterHandler) UpdateOverridesHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		ScheduleDateOverrides string `json:"scheduleDateOverrides" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.MasterSvc.UpdateOverrides(id, req.ScheduleDateOverrides); err != nil {
		utils.GetLogger().Error("Failed to update overrides", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule overrides updated"})
}

// UploadAvatarHandler handles POST /api/masters/:id/avatar with a multipart
// "file" field. The image goes to external storage and its ID sticks to the
// master record.
func (h *MasterHandler) UploadAvatarHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, "masters/avatars")
	if err != nil {
		logger.Error("Avatar upload failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	if err := h.MasterSvc.SetAvatar(id, publicID); err != nil {
		logger.Error("Failed to attach avatar", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	downloadURL, err := h.StorageSvc.GetDownloadURL(c, publicID, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to construct download URL", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "avatar uploaded",
		"avatarId":    publicID,
		"downloadURL": downloadURL,
	})
}
