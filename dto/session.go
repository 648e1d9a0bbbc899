package dto

import (
	"main/model"
	"time"
)

type SessionResponse struct {
	ID              string            `json:"id"`
	SessionType     model.SessionType `json:"session_type"`
	DurationMinutes int               `json:"duration_minutes"`
	Subject         string            `json:"subject,omitempty"`
	Date            string            `json:"date"`
	Timestamp       time.Time         `json:"timestamp"`
}

func ToSessionResponse(session *model.FocusSession) SessionResponse {
	return SessionResponse{
		ID:              session.SessionID,
		SessionType:     session.SessionType,
		DurationMinutes: session.DurationMinutes,
		Subject:         session.Subject,
		Date:            session.Date,
		Timestamp:       session.Timestamp,
	}
}

func ToSessionResponses(sessions []*model.FocusSession) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = ToSessionResponse(session)
	}
	return responses
}

// CreateSessionRequest is a completed pomodoro phase reported by a client.
type CreateSessionRequest struct {
	SessionType     string `json:"session_type" binding:"required,sessiontype"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1"`
	Subject         string `json:"subject"`
	Date            string `json:"date" binding:"omitempty,dateformat"`
}
