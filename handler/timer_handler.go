package handler

import (
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// TimerHandler exposes the server-side pomodoro state machine. Each user
// has one timer, created on first use.
type TimerHandler struct {
	manager *usecase.TimerManager
}

func NewTimerHandler(manager *usecase.TimerManager) *TimerHandler {
	return &TimerHandler{manager: manager}
}

// StartTimer begins or resumes the countdown. Starting a work phase from
// idle requires a subject.
func (h *TimerHandler) StartTimer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Subject string `json:"subject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	timer := h.manager.GetTimer(userID)
	if err := timer.Start(req.Subject); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, timer.Snapshot())
}

func (h *TimerHandler) PauseTimer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	timer := h.manager.GetTimer(userID)
	if err := timer.Pause(); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, timer.Snapshot())
}

// ResetTimer abandons the current phase without recording anything.
func (h *TimerHandler) ResetTimer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	timer := h.manager.GetTimer(userID)
	timer.Reset()
	utils.Success(c, timer.Snapshot())
}

func (h *TimerHandler) GetTimerState(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	utils.Success(c, h.manager.GetTimer(userID).Snapshot())
}
