package model

import "time"

// Achievement is an unlocked badge. badge_type is unique per user and an
// earned badge is permanent.
type Achievement struct {
	AchievementID string    `bson:"_id" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	BadgeType     string    `bson:"badge_type" json:"badge_type"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	Icon          string    `bson:"icon" json:"icon"`
	EarnedAt      time.Time `bson:"earned_at" json:"earned_at"`
}
