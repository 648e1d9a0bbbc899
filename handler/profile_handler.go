package handler

import (
	"main/config"
	"main/dto"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the derived gamification profile and its earned
// badges.
type ProfileHandler struct {
	scoring      *usecase.ScoringService
	achievements *repository.AchievementsRepo
	cfg          config.ScoringConfig
}

func NewProfileHandler(scoring *usecase.ScoringService, achievements *repository.AchievementsRepo, cfg config.ScoringConfig) *ProfileHandler {
	return &ProfileHandler{scoring: scoring, achievements: achievements, cfg: cfg}
}

// GetProfile returns the derived profile; users with no recorded
// activity get the level 1 defaults.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	profile, err := h.scoring.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToProfileResponse(profile, h.cfg.XPPerLevel))
}

// UpdateSettings replaces the notification settings, the only
// caller-editable part of the profile.
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var settings model.NotificationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.scoring.UpdateNotificationSettings(c.Request.Context(), userID, settings)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToProfileResponse(profile, h.cfg.XPPerLevel))
}

func (h *ProfileHandler) GetAchievements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	achievements, err := h.achievements.GetUserAchievements(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToAchievementResponses(achievements))
}
