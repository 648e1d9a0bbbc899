package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

// StudyHandler records practice blocks and serves per-subject summaries.
type StudyHandler struct {
	ledger *usecase.LedgerService
	stats  *usecase.StatsService
}

func NewStudyHandler(ledger *usecase.LedgerService, stats *usecase.StatsService) *StudyHandler {
	return &StudyHandler{ledger: ledger, stats: stats}
}

func (h *StudyHandler) CreateStudyLog(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStudyLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date := req.Date
	if date == "" {
		date = utils.DateString(time.Now())
	}

	log := &model.StudyLog{
		UserID:           userID,
		Subject:          req.Subject,
		QuestionsSolved:  req.QuestionsSolved,
		CorrectAnswers:   req.CorrectAnswers,
		TimeSpentMinutes: req.TimeSpentMinutes,
		Date:             date,
	}

	if err := h.ledger.AppendStudyLog(c.Request.Context(), log); err != nil {
		respondError(c, err)
		return
	}
	utils.Created(c, dto.ToStudyLogResponse(log))
}

// GetStudyLogs lists practice records, filtered by ?date= and ?subject=.
func (h *StudyHandler) GetStudyLogs(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	logs, err := h.ledger.ListStudyLogs(c.Request.Context(), userID, c.Query("date"), c.Query("subject"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, dto.ToStudyLogResponses(logs))
}

// GetSubjectSummary aggregates all practice per subject, busiest subject
// first.
func (h *StudyHandler) GetSubjectSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.stats.SubjectSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, summary)
}
