package handlers

import (
	"errors"
	"net/http"

	"github.com/pros100kyiv/HUBbase-sub001/models"
	"github.com/pros100kyiv/HUBbase-sub001/services/appointment"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the appointment book.
type AppointmentHandler struct {
	ApptSvc appointment.AppointmentService
}

// ListAppointmentsHandler handles GET /api/appointments?date=YYYY-MM-DD with
// an optional masterId filter. A missing or malformed date means today.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.ApptSvc.ListAppointments(c.Query("date"), c.Query("masterId"))
	if err != nil {
		utils.GetLogger().Error("Failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appts)
}

// GetAppointmentHandler handles GET /api/appointments/:id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	a, err := h.ApptSvc.GetAppointmentByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// CreateAppointmentHandler handles POST /api/appointments. A booking that
// overlaps an existing one for the same master is rejected with 409.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Appointment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid appointment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	created, err := h.ApptSvc.CreateAppointment(&req)
	if err != nil {
		if errors.Is(err, appointment.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create appointment", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateAppointmentHandler handles PUT /api/appointments/:id.
func (h *AppointmentHandler) UpdateAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.Appointment
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid appointment payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	req.ID = c.Param("id")

	updated, err := h.ApptSvc.UpdateAppointment(&req)
	if err != nil {
		if errors.Is(err, appointment.ErrSlotTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update appointment", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetStatusHandler handles PATCH /api/appointments/:id/status.
func (h *AppointmentHandler) SetStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.ApptSvc.SetStatus(id, req.Status); err != nil {
		utils.GetLogger().Error("Failed to set status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DeleteAppointmentHandler handles DELETE /api/appointments/:id.
func (h *AppointmentHandler) DeleteAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.ApptSvc.DeleteAppointment(id); err != nil {
		utils.GetLogger().Error("Failed to delete appointment", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted"})
}
