package model

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	TaskID          string    `bson:"_id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	Title           string    `bson:"title" json:"title"`
	Subject         string    `bson:"subject" json:"subject"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	Completed       bool      `bson:"completed" json:"completed"`
	Priority        Priority  `bson:"priority" json:"priority"`
	Date            string    `bson:"date" json:"date"` // YYYY-MM-DD
	DurationMinutes int       `bson:"duration_minutes" json:"duration_minutes"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title           *string   `json:"title,omitempty"`
	Subject         *string   `json:"subject,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Completed       *bool     `json:"completed,omitempty"`
	Priority        *Priority `json:"priority,omitempty"`
	Date            *string   `json:"date,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
}
