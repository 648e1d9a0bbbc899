package model

import "time"

type SessionType string

const (
	SessionWork  SessionType = "work"
	SessionBreak SessionType = "break"
)

// FocusSession is one completed pomodoro phase. Records are append-only:
// once written they are never updated or deleted.
type FocusSession struct {
	SessionID       string      `bson:"_id" json:"id"`
	UserID          string      `bson:"user_id" json:"user_id"`
	SessionType     SessionType `bson:"session_type" json:"session_type"`
	DurationMinutes int         `bson:"duration_minutes" json:"duration_minutes"`
	Subject         string      `bson:"subject,omitempty" json:"subject,omitempty"`
	Date            string      `bson:"date" json:"date"` // YYYY-MM-DD
	Timestamp       time.Time   `bson:"timestamp" json:"timestamp"`
}
