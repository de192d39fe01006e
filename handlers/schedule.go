package handlers

import (
	"net/http"
	"strconv"

	"github.com/pros100kyiv/HUBbase-sub001/services/schedule"
	"github.com/pros100kyiv/HUBbase-sub001/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves availability queries computed by the schedule
// engine. Out-of-range numeric parameters are clamped, not rejected; the
// response echoes the values actually used.
type ScheduleHandler struct {
	Engine *schedule.Engine
}

// queryInt parses an optional numeric query parameter. Absent or malformed
// values come back as 0 and fall through to the engine's defaults.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// FreeSlotsHandler handles GET /api/schedule/free-slots.
func (h *ScheduleHandler) FreeSlotsHandler(c *gin.Context) {
	res, err := h.Engine.FreeSlots(schedule.FreeSlotsArgs{
		Date:            c.Query("date"),
		DurationMinutes: queryInt(c, "durationMinutes"),
		Limit:           queryInt(c, "limit"),
		MasterID:        c.Query("masterId"),
		MasterName:      c.Query("masterName"),
	})
	if err != nil {
		utils.GetLogger().Error("Free-slot query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// GapsHandler handles GET /api/schedule/gaps.
func (h *ScheduleHandler) GapsHandler(c *gin.Context) {
	res, err := h.Engine.GapsSummary(schedule.GapsArgs{
		Date:          c.Query("date"),
		MinGapMinutes: queryInt(c, "minGapMinutes"),
		Limit:         queryInt(c, "limit"),
		MasterID:      c.Query("masterId"),
		MasterName:    c.Query("masterName"),
	})
	if err != nil {
		utils.GetLogger().Error("Gap query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// WhoWorkingHandler handles GET /api/schedule/who-working.
func (h *ScheduleHandler) WhoWorkingHandler(c *gin.Context) {
	res, err := h.Engine.WhoWorking(c.Query("date"))
	if err != nil {
		utils.GetLogger().Error("Who-working query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}

// OverviewHandler handles GET /api/schedule/overview.
func (h *ScheduleHandler) OverviewHandler(c *gin.Context) {
	res, err := h.Engine.ScheduleOverview()
	if err != nil {
		utils.GetLogger().Error("Overview query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
