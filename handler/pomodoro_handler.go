package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// PomodoroHandler records completed pomodoro phases into the ledger and
// serves daily session stats.
type PomodoroHandler struct {
	ledger *usecase.LedgerService
	stats  *usecase.StatsService
}

func NewPomodoroHandler(ledger *usecase.LedgerService, stats *usecase.StatsService) *PomodoroHandler {
	return &PomodoroHandler{ledger: ledger, stats: stats}
}

// CreateSession appends a completed phase reported by the client. Scoring
// runs synchronously, so the response reflects the recorded session only
// after the profile has been re-derived.
func (h *PomodoroHandler) CreateSession(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date := req.Date
	if date == "" {
		date = utils.DateString(time.Now())
	}

	session := &model.FocusSession{
		UserID:          userID,
		SessionType:     model.SessionType(req.SessionType),
		DurationMinutes: req.DurationMinutes,
		Subject:         req.Subject,
		Date:            date,
	}

	if err := h.ledger.AppendSession(c.Request.Context(), session); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToSessionResponse(session))
}

// GetDayStats summarizes one day's sessions, default today.
func (h *PomodoroHandler) GetDayStats(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	stats, err := h.stats.PomodoroStats(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"total_sessions":     stats.TotalSessions,
		"total_work_minutes": stats.TotalWorkMinutes,
		"sessions":           dto.ToSessionResponses(stats.Sessions),
	})
}
