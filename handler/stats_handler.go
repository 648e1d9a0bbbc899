package handler

import (
	"strconv"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const defaultHeatmapDays = 90

// StatsHandler serves the read-only aggregation views.
type StatsHandler struct {
	stats *usecase.StatsService
}

func NewStatsHandler(stats *usecase.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetDashboard summarizes today: tasks, pomodoros, study minutes,
// questions, achievements and streak.
func (h *StatsHandler) GetDashboard(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.stats.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, stats)
}

// GetHeatmap returns work minutes per day over the trailing ?days=
// window (default 90). Every day in the window is present, zero-filled.
func (h *StatsHandler) GetHeatmap(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	days := defaultHeatmapDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 366 {
			utils.BadRequest(c, "days must be between 1 and 366")
			return
		}
		days = parsed
	}

	heatmap, err := h.stats.Heatmap(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, heatmap)
}

// GetWeeklyReport summarizes the week starting the most recent Monday.
func (h *StatsHandler) GetWeeklyReport(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	report, err := h.stats.WeeklyReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, report)
}
