package usecase

import (
	"testing"
	"time"

	"main/model"
	"main/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundedAccuracy(t *testing.T) {
	assert.Equal(t, 0, RoundedAccuracy(0, 0))
	assert.Equal(t, 0, RoundedAccuracy(5, 0))
	assert.Equal(t, 100, RoundedAccuracy(10, 10))
	assert.Equal(t, 70, RoundedAccuracy(7, 10))
	assert.Equal(t, 75, RoundedAccuracy(15, 20))
	assert.Equal(t, 67, RoundedAccuracy(2, 3))
	assert.Equal(t, 33, RoundedAccuracy(1, 3))
}

func TestBuildHeatmapZeroFillsWindow(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	sessions := []*model.FocusSession{
		workSession("2026-03-10", 25),
		workSession("2026-03-10", 25),
		workSession("2026-03-08", 50),
		workSession("2026-02-01", 25), // outside the window
		{UserID: "user-1", SessionType: model.SessionBreak, DurationMinutes: 5, Date: "2026-03-10"},
	}

	heatmap := BuildHeatmap(sessions, 7, today)
	require.Len(t, heatmap, 7)

	assert.Equal(t, 50, heatmap["2026-03-10"])
	assert.Equal(t, 0, heatmap["2026-03-09"])
	assert.Equal(t, 50, heatmap["2026-03-08"])
	assert.Equal(t, 0, heatmap["2026-03-04"])
	assert.NotContains(t, heatmap, "2026-03-03")
	assert.NotContains(t, heatmap, "2026-02-01")
}

func TestBuildWeeklyReport(t *testing.T) {
	// 2026-03-09 is a Monday.
	weekStart := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	sessions := []*model.FocusSession{
		workSession("2026-03-09", 25),
		workSession("2026-03-11", 25),
		workSession("2026-03-08", 25), // previous week
	}
	logs := []*model.StudyLog{
		{Subject: "Math", QuestionsSolved: 20, CorrectAnswers: 15, TimeSpentMinutes: 30, Date: "2026-03-10"},
		{Subject: "Math", QuestionsSolved: 10, CorrectAnswers: 9, TimeSpentMinutes: 15, Date: "2026-03-02"}, // previous week
	}
	tasks := []*model.Task{
		{Title: "review notes", Completed: true, Date: "2026-03-09"},
		{Title: "practice set", Completed: false, Date: "2026-03-10"},
		{Title: "old task", Completed: true, Date: "2026-03-01"},
	}
	achievements := []*model.Achievement{
		{BadgeType: "first_pomodoro", EarnedAt: weekStart.Add(36 * time.Hour)},
		{BadgeType: "100_questions", EarnedAt: weekStart.AddDate(0, 0, -3)},
	}

	report := BuildWeeklyReport(sessions, logs, tasks, achievements, weekStart)

	assert.Equal(t, "2026-03-09", report.WeekStart)
	assert.Equal(t, "2026-03-15", report.WeekEnd)
	assert.Equal(t, 2, report.TotalPomodoros)
	assert.Equal(t, 30, report.TotalStudyMinutes)
	assert.Equal(t, 20, report.TotalQuestions)
	assert.Equal(t, 15, report.TotalCorrect)
	assert.Equal(t, 75, report.Accuracy)
	assert.Equal(t, 1, report.TasksCompleted)
	assert.Equal(t, 1, report.NewAchievements)
}

func TestBuildSubjectSummaryOrdering(t *testing.T) {
	logs := []*model.StudyLog{
		{Subject: "Physics", QuestionsSolved: 10, CorrectAnswers: 7, TimeSpentMinutes: 20},
		{Subject: "Math", QuestionsSolved: 20, CorrectAnswers: 15, TimeSpentMinutes: 30},
		{Subject: "Math", QuestionsSolved: 10, CorrectAnswers: 10, TimeSpentMinutes: 15},
		{Subject: "Chemistry", QuestionsSolved: 10, CorrectAnswers: 5, TimeSpentMinutes: 10},
	}

	summary := BuildSubjectSummary(logs)
	require.Len(t, summary, 3)

	// Busiest subject first, ties broken alphabetically.
	assert.Equal(t, "Math", summary[0].Subject)
	assert.Equal(t, 30, summary[0].TotalQuestions)
	assert.Equal(t, 25, summary[0].TotalCorrect)
	assert.Equal(t, 83, summary[0].Accuracy)
	assert.Equal(t, 45, summary[0].TotalTimeMinutes)

	assert.Equal(t, "Chemistry", summary[1].Subject)
	assert.Equal(t, "Physics", summary[2].Subject)
}

func TestBuildSubjectSummaryEmpty(t *testing.T) {
	assert.Empty(t, BuildSubjectSummary(nil))
}

func TestBuildDashboardStats(t *testing.T) {
	tasks := []*model.Task{
		{Title: "a", Completed: true},
		{Title: "b", Completed: false},
		{Title: "c", Completed: true},
	}
	sessions := []*model.FocusSession{
		workSession("2026-03-10", 25),
		{SessionType: model.SessionBreak, DurationMinutes: 5, Date: "2026-03-10"},
	}
	logs := []*model.StudyLog{
		{Subject: "Math", QuestionsSolved: 12, CorrectAnswers: 9, TimeSpentMinutes: 40},
	}

	stats := BuildDashboardStats(tasks, sessions, logs, 4, 6)

	assert.Equal(t, 3, stats.TodayTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 1, stats.TodayPomodoros)
	assert.Equal(t, 40, stats.TodayStudyMinutes)
	assert.Equal(t, 12, stats.TodayQuestions)
	assert.Equal(t, 4, stats.TotalAchievements)
	assert.Equal(t, 6, stats.CurrentStreak)
}

func TestBuildPomodoroStats(t *testing.T) {
	sessions := []*model.FocusSession{
		workSession("2026-03-10", 25),
		workSession("2026-03-10", 25),
		{SessionType: model.SessionBreak, DurationMinutes: 5, Date: "2026-03-10"},
	}

	stats := BuildPomodoroStats(sessions)
	assert.Equal(t, 2, stats.TotalSessions)
	assert.Equal(t, 50, stats.TotalWorkMinutes)
	assert.Len(t, stats.Sessions, 3)

	empty := BuildPomodoroStats(nil)
	assert.Zero(t, empty.TotalSessions)
	assert.NotNil(t, empty.Sessions)
}

func TestWeekStartIsMonday(t *testing.T) {
	// Tuesday rolls back one day, Monday stays, Sunday rolls back six.
	tuesday := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-09", utils.DateString(utils.WeekStart(tuesday)))

	monday := time.Date(2026, 3, 9, 0, 5, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-09", utils.DateString(utils.WeekStart(monday)))

	sunday := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-09", utils.DateString(utils.WeekStart(sunday)))
}
