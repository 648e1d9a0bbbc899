package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// RoundedAccuracy is the one accuracy rule used everywhere: a percentage
// rounded to the nearest whole number, 0 when there are no questions.
func RoundedAccuracy(correct, questions int) int {
	if questions <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(questions)))
}

// BuildHeatmap maps each of the trailing `days` calendar days ending
// today to the total work minutes logged that day. Every day appears,
// zero-filled when empty.
func BuildHeatmap(sessions []*model.FocusSession, days int, today time.Time) map[string]int {
	heatmap := make(map[string]int, days)
	for i := 0; i < days; i++ {
		heatmap[utils.DateString(today.AddDate(0, 0, -i))] = 0
	}

	for _, s := range sessions {
		if s.SessionType != model.SessionWork {
			continue
		}
		if _, ok := heatmap[s.Date]; ok {
			heatmap[s.Date] += s.DurationMinutes
		}
	}
	return heatmap
}

// BuildWeeklyReport summarizes the week starting at weekStart (a Monday).
// Records outside the seven-day window are ignored, so callers may pass
// unfiltered slices.
func BuildWeeklyReport(
	sessions []*model.FocusSession,
	logs []*model.StudyLog,
	tasks []*model.Task,
	achievements []*model.Achievement,
	weekStart time.Time,
) model.WeeklyReport {
	weekEnd := weekStart.AddDate(0, 0, 6)
	from := utils.DateString(weekStart)
	to := utils.DateString(weekEnd)

	inWindow := func(date string) bool { return date >= from && date <= to }

	report := model.WeeklyReport{
		WeekStart: from,
		WeekEnd:   to,
	}

	for _, s := range sessions {
		if s.SessionType == model.SessionWork && inWindow(s.Date) {
			report.TotalPomodoros++
		}
	}

	for _, l := range logs {
		if !inWindow(l.Date) {
			continue
		}
		report.TotalStudyMinutes += l.TimeSpentMinutes
		report.TotalQuestions += l.QuestionsSolved
		report.TotalCorrect += l.CorrectAnswers
	}
	report.Accuracy = RoundedAccuracy(report.TotalCorrect, report.TotalQuestions)

	for _, t := range tasks {
		if t.Completed && inWindow(t.Date) {
			report.TasksCompleted++
		}
	}

	windowEnd := weekStart.AddDate(0, 0, 7)
	for _, a := range achievements {
		if !a.EarnedAt.Before(weekStart) && a.EarnedAt.Before(windowEnd) {
			report.NewAchievements++
		}
	}

	return report
}

// BuildSubjectSummary aggregates practice logs per subject, ordered by
// descending total questions with ties broken by subject name.
func BuildSubjectSummary(logs []*model.StudyLog) []model.SubjectSummary {
	totals := make(map[string]*model.SubjectSummary)
	for _, l := range logs {
		row, ok := totals[l.Subject]
		if !ok {
			row = &model.SubjectSummary{Subject: l.Subject}
			totals[l.Subject] = row
		}
		row.TotalQuestions += l.QuestionsSolved
		row.TotalCorrect += l.CorrectAnswers
		row.TotalTimeMinutes += l.TimeSpentMinutes
	}

	summary := make([]model.SubjectSummary, 0, len(totals))
	for _, row := range totals {
		row.Accuracy = RoundedAccuracy(row.TotalCorrect, row.TotalQuestions)
		summary = append(summary, *row)
	}

	sort.Slice(summary, func(i, j int) bool {
		if summary[i].TotalQuestions != summary[j].TotalQuestions {
			return summary[i].TotalQuestions > summary[j].TotalQuestions
		}
		return summary[i].Subject < summary[j].Subject
	})
	return summary
}

// BuildDashboardStats summarizes a single calendar day. The record slices
// are expected to be that day's records.
func BuildDashboardStats(
	tasks []*model.Task,
	sessions []*model.FocusSession,
	logs []*model.StudyLog,
	totalAchievements int,
	currentStreak int,
) model.DashboardStats {
	stats := model.DashboardStats{
		TodayTasks:        len(tasks),
		TotalAchievements: totalAchievements,
		CurrentStreak:     currentStreak,
	}

	for _, t := range tasks {
		if t.Completed {
			stats.CompletedTasks++
		}
	}
	for _, s := range sessions {
		if s.SessionType == model.SessionWork {
			stats.TodayPomodoros++
		}
	}
	for _, l := range logs {
		stats.TodayStudyMinutes += l.TimeSpentMinutes
		stats.TodayQuestions += l.QuestionsSolved
	}
	return stats
}

// BuildPomodoroStats summarizes completed sessions for one day.
func BuildPomodoroStats(sessions []*model.FocusSession) model.PomodoroStats {
	stats := model.PomodoroStats{Sessions: sessions}
	for _, s := range sessions {
		if s.SessionType == model.SessionWork {
			stats.TotalSessions++
			stats.TotalWorkMinutes += s.DurationMinutes
		}
	}
	if stats.Sessions == nil {
		stats.Sessions = []*model.FocusSession{}
	}
	return stats
}

// StatsService wires the pure aggregation builders to the ledger repos.
// All queries are read-only and computed on demand.
type StatsService struct {
	sessions     *repository.SessionsRepo
	studyLogs    *repository.StudyLogsRepo
	tasks        *repository.TasksRepo
	achievements *repository.AchievementsRepo
	profiles     *repository.ProfilesRepo
}

func NewStatsService(
	sessions *repository.SessionsRepo,
	studyLogs *repository.StudyLogsRepo,
	tasks *repository.TasksRepo,
	achievements *repository.AchievementsRepo,
	profiles *repository.ProfilesRepo,
) *StatsService {
	return &StatsService{
		sessions:     sessions,
		studyLogs:    studyLogs,
		tasks:        tasks,
		achievements: achievements,
		profiles:     profiles,
	}
}

// Heatmap returns work minutes per day for the trailing `days` days.
func (svc *StatsService) Heatmap(ctx context.Context, userID string, days int) (map[string]int, error) {
	if days <= 0 {
		return nil, model.NewValidationError("days must be positive")
	}

	today := time.Now()
	from := utils.DateString(today.AddDate(0, 0, -(days - 1)))
	to := utils.DateString(today)

	sessions, err := svc.sessions.GetSessionsInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return BuildHeatmap(sessions, days, today), nil
}

// WeeklyReport summarizes the week starting the most recent Monday.
func (svc *StatsService) WeeklyReport(ctx context.Context, userID string) (*model.WeeklyReport, error) {
	weekStart := utils.WeekStart(time.Now())
	from := utils.DateString(weekStart)
	to := utils.DateString(weekStart.AddDate(0, 0, 6))

	sessions, err := svc.sessions.GetSessionsInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	logs, err := svc.studyLogs.GetStudyLogsInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	tasks, err := svc.tasks.GetTasksInRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	achievements, err := svc.achievements.GetUserAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := BuildWeeklyReport(sessions, logs, tasks, achievements, weekStart)
	return &report, nil
}

// SubjectSummary aggregates every practice log per subject.
func (svc *StatsService) SubjectSummary(ctx context.Context, userID string) ([]model.SubjectSummary, error) {
	logs, err := svc.studyLogs.GetUserStudyLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BuildSubjectSummary(logs), nil
}

// DashboardStats summarizes the current calendar day.
func (svc *StatsService) DashboardStats(ctx context.Context, userID string) (*model.DashboardStats, error) {
	today := utils.DateString(time.Now())

	tasks, err := svc.tasks.GetTasksByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	sessions, err := svc.sessions.GetSessionsByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	logs, err := svc.studyLogs.ListStudyLogs(ctx, userID, today, "")
	if err != nil {
		return nil, err
	}
	totalAchievements, err := svc.achievements.CountUserAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	streak := 0
	profile, err := svc.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		streak = profile.CurrentStreak
	}

	stats := BuildDashboardStats(tasks, sessions, logs, totalAchievements, streak)
	return &stats, nil
}

// PomodoroStats summarizes one day's completed sessions (default today).
func (svc *StatsService) PomodoroStats(ctx context.Context, userID, date string) (*model.PomodoroStats, error) {
	if date == "" {
		date = utils.DateString(time.Now())
	}
	if !utils.IsValidDate(date) {
		return nil, model.NewValidationError("date must be YYYY-MM-DD")
	}

	sessions, err := svc.sessions.GetSessionsByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	stats := BuildPomodoroStats(sessions)
	return &stats, nil
}
