package dto

import (
	"main/model"
	"time"
)

type TaskResponse struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Subject         string         `json:"subject"`
	Description     string         `json:"description,omitempty"`
	Completed       bool           `json:"completed"`
	Priority        model.Priority `json:"priority"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"duration_minutes"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func ToTaskResponse(task *model.Task) TaskResponse {
	return TaskResponse{
		ID:              task.TaskID,
		Title:           task.Title,
		Subject:         task.Subject,
		Description:     task.Description,
		Completed:       task.Completed,
		Priority:        task.Priority,
		Date:            task.Date,
		DurationMinutes: task.DurationMinutes,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

func ToTaskResponses(tasks []*model.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}
