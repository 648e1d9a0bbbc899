package dto

import (
	"main/model"
	"main/usecase"
	"time"
)

type StudyLogResponse struct {
	ID               string    `json:"id"`
	Subject          string    `json:"subject"`
	QuestionsSolved  int       `json:"questions_solved"`
	CorrectAnswers   int       `json:"correct_answers"`
	Accuracy         int       `json:"accuracy"`
	TimeSpentMinutes int       `json:"time_spent_minutes"`
	Date             string    `json:"date"`
	Timestamp        time.Time `json:"timestamp"`
}

func ToStudyLogResponse(log *model.StudyLog) StudyLogResponse {
	return StudyLogResponse{
		ID:               log.LogID,
		Subject:          log.Subject,
		QuestionsSolved:  log.QuestionsSolved,
		CorrectAnswers:   log.CorrectAnswers,
		Accuracy:         usecase.RoundedAccuracy(log.CorrectAnswers, log.QuestionsSolved),
		TimeSpentMinutes: log.TimeSpentMinutes,
		Date:             log.Date,
		Timestamp:        log.Timestamp,
	}
}

func ToStudyLogResponses(logs []*model.StudyLog) []StudyLogResponse {
	responses := make([]StudyLogResponse, len(logs))
	for i, log := range logs {
		responses[i] = ToStudyLogResponse(log)
	}
	return responses
}

// CreateStudyLogRequest is a practice block reported by a client.
type CreateStudyLogRequest struct {
	Subject          string `json:"subject" binding:"required"`
	QuestionsSolved  int    `json:"questions_solved" binding:"min=0"`
	CorrectAnswers   int    `json:"correct_answers" binding:"min=0"`
	TimeSpentMinutes int    `json:"time_spent_minutes" binding:"min=0"`
	Date             string `json:"date" binding:"omitempty,dateformat"`
}
