package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TasksHandler struct {
	service *usecase.TasksService
}

func NewTasksHandler(service *usecase.TasksService) *TasksHandler {
	return &TasksHandler{service: service}
}

func (h *TasksHandler) CreateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title           string         `json:"title" binding:"required"`
		Subject         string         `json:"subject" binding:"required"`
		Description     string         `json:"description"`
		Priority        model.Priority `json:"priority" binding:"omitempty,priority"`
		Date            string         `json:"date" binding:"omitempty,dateformat"`
		DurationMinutes int            `json:"duration_minutes" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task := &model.Task{
		UserID:          userID,
		Title:           req.Title,
		Subject:         req.Subject,
		Description:     req.Description,
		Priority:        req.Priority,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
	}

	created, err := h.service.CreateTask(c.Request.Context(), task)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToTaskResponse(created))
}

// GetTasks lists the user's tasks, filtered to one day when ?date= is
// given.
func (h *TasksHandler) GetTasks(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tasks, err := h.service.ListTasks(c.Request.Context(), userID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTaskResponses(tasks))
}

func (h *TasksHandler) UpdateTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	var updates model.TaskUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	task, err := h.service.UpdateTask(c.Request.Context(), taskID, userID, &updates)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToTaskResponse(task))
}

func (h *TasksHandler) DeleteTask(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	taskID := c.Param("id")
	if taskID == "" {
		utils.BadRequest(c, "Missing task ID")
		return
	}

	if err := h.service.DeleteTask(c.Request.Context(), taskID, userID); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, gin.H{"message": "task deleted"})
}
