package usecase

import (
	"context"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

const defaultTaskMinutes = 25

// TasksService handles the study task list. Unlike the ledger records
// tasks are mutable and deletable.
type TasksService struct {
	tasks *repository.TasksRepo
}

func NewTasksService(tasks *repository.TasksRepo) *TasksService {
	return &TasksService{tasks: tasks}
}

func (svc *TasksService) CreateTask(ctx context.Context, task *model.Task) (*model.Task, error) {
	if task.UserID == "" {
		return nil, model.NewValidationError("user id is required")
	}
	if task.Title == "" {
		return nil, model.NewValidationError("title is required")
	}
	if task.Subject == "" {
		return nil, model.ErrMissingSubject
	}

	now := time.Now()
	if task.Date == "" {
		task.Date = utils.DateString(now)
	} else if !utils.IsValidDate(task.Date) {
		return nil, model.NewValidationError("date must be YYYY-MM-DD")
	}
	if task.Priority == "" {
		task.Priority = model.PriorityMedium
	}
	switch task.Priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
	default:
		return nil, model.NewValidationError("priority must be low, medium or high")
	}
	if task.DurationMinutes == 0 {
		task.DurationMinutes = defaultTaskMinutes
	} else if task.DurationMinutes < 0 {
		return nil, model.NewValidationError("duration must be positive")
	}

	task.TaskID = utils.GenerateID()
	task.Completed = false
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := svc.tasks.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks returns the user's tasks, optionally for a single day.
func (svc *TasksService) ListTasks(ctx context.Context, userID, date string) ([]*model.Task, error) {
	if date != "" && !utils.IsValidDate(date) {
		return nil, model.NewValidationError("date must be YYYY-MM-DD")
	}
	return svc.tasks.GetUserTasks(ctx, userID, date)
}

func (svc *TasksService) UpdateTask(ctx context.Context, taskID, userID string, updates *model.TaskUpdate) (*model.Task, error) {
	if updates.Title != nil && *updates.Title == "" {
		return nil, model.NewValidationError("title cannot be empty")
	}
	if updates.Subject != nil && *updates.Subject == "" {
		return nil, model.ErrMissingSubject
	}
	if updates.Date != nil && !utils.IsValidDate(*updates.Date) {
		return nil, model.NewValidationError("date must be YYYY-MM-DD")
	}
	if updates.Priority != nil {
		switch *updates.Priority {
		case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		default:
			return nil, model.NewValidationError("priority must be low, medium or high")
		}
	}
	if updates.DurationMinutes != nil && *updates.DurationMinutes <= 0 {
		return nil, model.NewValidationError("duration must be positive")
	}
	return svc.tasks.UpdateTask(ctx, taskID, userID, updates)
}

func (svc *TasksService) DeleteTask(ctx context.Context, taskID, userID string) error {
	return svc.tasks.DeleteTask(ctx, taskID, userID)
}
