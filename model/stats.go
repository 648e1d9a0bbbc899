package model

// PomodoroStats summarizes completed sessions for one calendar day.
type PomodoroStats struct {
	TotalSessions    int             `json:"total_sessions"`
	TotalWorkMinutes int             `json:"total_work_minutes"`
	Sessions         []*FocusSession `json:"sessions"`
}

type DashboardStats struct {
	TodayTasks        int `json:"today_tasks"`
	CompletedTasks    int `json:"completed_tasks"`
	TodayPomodoros    int `json:"today_pomodoros"`
	TodayStudyMinutes int `json:"today_study_minutes"`
	TodayQuestions    int `json:"today_questions"`
	TotalAchievements int `json:"total_achievements"`
	CurrentStreak     int `json:"current_streak"`
}

type WeeklyReport struct {
	WeekStart         string `json:"week_start"` // YYYY-MM-DD, most recent Monday
	WeekEnd           string `json:"week_end"`
	TotalPomodoros    int    `json:"total_pomodoros"`
	TotalStudyMinutes int    `json:"total_study_minutes"`
	TotalQuestions    int    `json:"total_questions"`
	TotalCorrect      int    `json:"total_correct"`
	Accuracy          int    `json:"accuracy"` // rounded percentage, 0 when no questions
	TasksCompleted    int    `json:"tasks_completed"`
	NewAchievements   int    `json:"new_achievements"`
}

type SubjectSummary struct {
	Subject          string `json:"subject"`
	TotalQuestions   int    `json:"total_questions"`
	TotalCorrect     int    `json:"total_correct"`
	Accuracy         int    `json:"accuracy"`
	TotalTimeMinutes int    `json:"total_time_minutes"`
}
