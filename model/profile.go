package model

import "time"

type CharacterType string

const (
	CharacterSeed   CharacterType = "seed"
	CharacterSprout CharacterType = "sprout"
	CharacterTree   CharacterType = "tree"
	CharacterForest CharacterType = "forest"
)

type NotificationSettings struct {
	SoundEnabled      bool `bson:"sound_enabled" json:"sound_enabled"`
	BreakReminders    bool `bson:"break_reminders" json:"break_reminders"`
	AchievementAlerts bool `bson:"achievement_alerts" json:"achievement_alerts"`
}

func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		SoundEnabled:      true,
		BreakReminders:    true,
		AchievementAlerts: true,
	}
}

// Profile is the single derived gamification document per user. It is
// written only by the scoring derivation pass; notification settings are
// the one caller-editable part.
type Profile struct {
	UserID               string               `bson:"_id" json:"user_id"`
	Level                int                  `bson:"level" json:"level"`
	Experience           int                  `bson:"experience" json:"experience"`
	TreesPlanted         int                  `bson:"trees_planted" json:"trees_planted"`
	TotalFocusMinutes    int                  `bson:"total_focus_minutes" json:"total_focus_minutes"`
	CharacterType        CharacterType        `bson:"character_type" json:"character_type"`
	CurrentStreak        int                  `bson:"current_streak" json:"current_streak"`
	NotificationSettings NotificationSettings `bson:"notification_settings" json:"notification_settings"`
	UpdatedAt            time.Time            `bson:"updated_at" json:"updated_at"`
}

func NewProfile(userID string) *Profile {
	return &Profile{
		UserID:               userID,
		Level:                1,
		CharacterType:        CharacterSeed,
		NotificationSettings: DefaultNotificationSettings(),
		UpdatedAt:            time.Now(),
	}
}
