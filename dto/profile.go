package dto

import (
	"main/model"
	"time"
)

type ProfileResponse struct {
	Level                int                        `json:"level"`
	Experience           int                        `json:"experience"`
	XPToNextLevel        int                        `json:"xp_to_next_level"`
	TreesPlanted         int                        `json:"trees_planted"`
	TotalFocusMinutes    int                        `json:"total_focus_minutes"`
	CharacterType        model.CharacterType        `json:"character_type"`
	CurrentStreak        int                        `json:"current_streak"`
	NotificationSettings model.NotificationSettings `json:"notification_settings"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}

func ToProfileResponse(profile *model.Profile, xpPerLevel int) ProfileResponse {
	return ProfileResponse{
		Level:                profile.Level,
		Experience:           profile.Experience,
		XPToNextLevel:        profile.Level*xpPerLevel - profile.Experience,
		TreesPlanted:         profile.TreesPlanted,
		TotalFocusMinutes:    profile.TotalFocusMinutes,
		CharacterType:        profile.CharacterType,
		CurrentStreak:        profile.CurrentStreak,
		NotificationSettings: profile.NotificationSettings,
		UpdatedAt:            profile.UpdatedAt,
	}
}

type AchievementResponse struct {
	BadgeType   string    `json:"badge_type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedAt    time.Time `json:"earned_at"`
}

func ToAchievementResponse(achievement *model.Achievement) AchievementResponse {
	return AchievementResponse{
		BadgeType:   achievement.BadgeType,
		Title:       achievement.Title,
		Description: achievement.Description,
		Icon:        achievement.Icon,
		EarnedAt:    achievement.EarnedAt,
	}
}

func ToAchievementResponses(achievements []*model.Achievement) []AchievementResponse {
	responses := make([]AchievementResponse, len(achievements))
	for i, achievement := range achievements {
		responses[i] = ToAchievementResponse(achievement)
	}
	return responses
}
