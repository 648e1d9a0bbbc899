package usecase

import (
	"context"
	"time"

	"main/config"
	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

// DerivedSnapshot holds the cumulative numbers a derivation pass computes
// from the ledger. Achievement predicates read this.
type DerivedSnapshot struct {
	WorkSessions      int
	TotalFocusMinutes int
	TotalQuestions    int
	TotalCorrect      int
	TotalStudyMinutes int
	Experience        int
	Level             int
	TreesPlanted      int
	Streak            int
}

// AchievementRule pairs a badge with its unlock predicate. Rules are
// evaluated in table order after every derivation pass.
type AchievementRule struct {
	BadgeType   string
	Title       string
	Description string
	Icon        string
	Unlocked    func(DerivedSnapshot) bool
}

// AchievementRules returns the fixed, ordered rule table. Adding a badge
// means adding a row here; nothing else changes.
func AchievementRules(cfg config.ScoringConfig) []AchievementRule {
	return []AchievementRule{
		{
			BadgeType:   "first_pomodoro",
			Title:       "First Pomodoro!",
			Description: "You completed your first work session!",
			Icon:        "🍅",
			Unlocked:    func(s DerivedSnapshot) bool { return s.WorkSessions >= 1 },
		},
		{
			BadgeType:   "ten_pomodoros",
			Title:       "Ten Sessions",
			Description: "Ten completed work sessions.",
			Icon:        "🔟",
			Unlocked:    func(s DerivedSnapshot) bool { return s.WorkSessions >= 10 },
		},
		{
			BadgeType:   "marathon",
			Title:       "Marathon",
			Description: "A serious amount of total focus time.",
			Icon:        "🏃",
			Unlocked:    func(s DerivedSnapshot) bool { return s.TotalFocusMinutes >= cfg.MarathonMinutes },
		},
		{
			BadgeType:   "100_questions",
			Title:       "100 Questions!",
			Description: "You solved 100 questions. Keep going!",
			Icon:        "💯",
			Unlocked:    func(s DerivedSnapshot) bool { return s.TotalQuestions >= 100 },
		},
		{
			BadgeType:   "500_questions",
			Title:       "500 Questions",
			Description: "Five hundred questions solved.",
			Icon:        "🧠",
			Unlocked:    func(s DerivedSnapshot) bool { return s.TotalQuestions >= 500 },
		},
		{
			BadgeType:   "sharpshooter",
			Title:       "Sharpshooter",
			Description: "Outstanding accuracy over a real sample.",
			Icon:        "🎯",
			Unlocked: func(s DerivedSnapshot) bool {
				return s.TotalQuestions >= cfg.SharpshooterQuestions &&
					RoundedAccuracy(s.TotalCorrect, s.TotalQuestions) >= cfg.SharpshooterAccuracy
			},
		},
		{
			BadgeType:   "3_day_streak",
			Title:       "3-Day Streak",
			Description: "Three days of focus in a row.",
			Icon:        "🔥",
			Unlocked:    func(s DerivedSnapshot) bool { return s.Streak >= 3 },
		},
		{
			BadgeType:   "7_day_streak",
			Title:       "7-Day Streak",
			Description: "A full week of daily focus.",
			Icon:        "⚡",
			Unlocked:    func(s DerivedSnapshot) bool { return s.Streak >= 7 },
		},
		{
			BadgeType:   "30_day_streak",
			Title:       "30-Day Streak",
			Description: "A whole month without missing a day.",
			Icon:        "🌟",
			Unlocked:    func(s DerivedSnapshot) bool { return s.Streak >= 30 },
		},
		{
			BadgeType:   "level_5",
			Title:       "Level 5",
			Description: "You reached level 5.",
			Icon:        "🏅",
			Unlocked:    func(s DerivedSnapshot) bool { return s.Level >= 5 },
		},
		{
			BadgeType:   "level_10",
			Title:       "Level 10",
			Description: "You reached level 10.",
			Icon:        "🏆",
			Unlocked:    func(s DerivedSnapshot) bool { return s.Level >= 10 },
		},
		{
			BadgeType:   "first_tree",
			Title:       "First Tree",
			Description: "Your first tree is planted.",
			Icon:        "🌳",
			Unlocked:    func(s DerivedSnapshot) bool { return s.TreesPlanted >= 1 },
		},
		{
			BadgeType:   "forest",
			Title:       "Forest",
			Description: "Ten trees make a forest.",
			Icon:        "🌲",
			Unlocked:    func(s DerivedSnapshot) bool { return s.TreesPlanted >= 10 },
		},
	}
}

// LevelForExperience maps XP to a level: one level per XPPerLevel points,
// starting at level 1.
func LevelForExperience(cfg config.ScoringConfig, experience int) int {
	return experience/cfg.XPPerLevel + 1
}

// TreesForLevel implements the declared planting policy: one tree each
// time the level crosses a multiple of the interval, i.e. level / interval
// with integer division. Total and monotonic in level.
func TreesForLevel(cfg config.ScoringConfig, level int) int {
	if cfg.TreeLevelInterval <= 0 {
		return 0
	}
	return level / cfg.TreeLevelInterval
}

// CharacterForTrees is the growth-stage step function over trees planted.
func CharacterForTrees(trees int) model.CharacterType {
	switch {
	case trees >= 10:
		return model.CharacterForest
	case trees >= 5:
		return model.CharacterTree
	case trees >= 1:
		return model.CharacterSprout
	default:
		return model.CharacterSeed
	}
}

// ComputeStreak counts consecutive calendar days with at least one work
// session, anchored at today or, within the grace window, the most recent
// day before it. A gap beyond the grace window resets the streak to 0.
func ComputeStreak(workDates map[string]bool, today time.Time, graceDays int) int {
	anchor := today
	found := false
	for offset := 0; offset <= graceDays; offset++ {
		day := today.AddDate(0, 0, -offset)
		if workDates[utils.DateString(day)] {
			anchor = day
			found = true
			break
		}
	}
	if !found {
		return 0
	}

	streak := 0
	for day := anchor; workDates[utils.DateString(day)]; day = day.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// BuildSnapshot folds the whole ledger into the derived numbers. It is a
// pure function: calling it twice over the same ledger yields the same
// snapshot, which is what makes the derivation pass idempotent.
func BuildSnapshot(cfg config.ScoringConfig, sessions []*model.FocusSession, logs []*model.StudyLog, now time.Time) DerivedSnapshot {
	var snap DerivedSnapshot

	workDates := make(map[string]bool)
	for _, s := range sessions {
		if s.SessionType != model.SessionWork {
			continue
		}
		snap.WorkSessions++
		snap.TotalFocusMinutes += s.DurationMinutes
		workDates[s.Date] = true
	}

	for _, l := range logs {
		snap.TotalQuestions += l.QuestionsSolved
		snap.TotalCorrect += l.CorrectAnswers
		snap.TotalStudyMinutes += l.TimeSpentMinutes
	}

	snap.Experience = snap.WorkSessions*cfg.XPPerSession + snap.TotalCorrect*cfg.XPPerCorrectAnswer
	snap.Level = LevelForExperience(cfg, snap.Experience)
	snap.TreesPlanted = TreesForLevel(cfg, snap.Level)
	snap.Streak = ComputeStreak(workDates, now, cfg.StreakGraceDays)

	return snap
}

// ScoringService runs the derivation pass: ledger in, authoritative
// profile and achievement unlocks out.
type ScoringService struct {
	cfg          config.ScoringConfig
	sessions     *repository.SessionsRepo
	studyLogs    *repository.StudyLogsRepo
	profiles     *repository.ProfilesRepo
	achievements *repository.AchievementsRepo
	cache        *services.ProfileCache
}

func NewScoringService(
	cfg config.ScoringConfig,
	sessions *repository.SessionsRepo,
	studyLogs *repository.StudyLogsRepo,
	profiles *repository.ProfilesRepo,
	achievements *repository.AchievementsRepo,
	cache *services.ProfileCache,
) *ScoringService {
	return &ScoringService{
		cfg:          cfg,
		sessions:     sessions,
		studyLogs:    studyLogs,
		profiles:     profiles,
		achievements: achievements,
		cache:        cache,
	}
}

// Derive recomputes the whole profile from the ledger, upserts it as one
// document, and unlocks any newly satisfied achievements. The caller
// (LedgerService) already holds the per-user lock.
func (svc *ScoringService) Derive(ctx context.Context, userID string) error {
	timer := utils.TrackDerivation()
	defer timer.ObserveDuration()

	sessions, err := svc.sessions.GetUserSessions(ctx, userID)
	if err != nil {
		return err
	}
	logs, err := svc.studyLogs.GetUserStudyLogs(ctx, userID)
	if err != nil {
		return err
	}

	snap := BuildSnapshot(svc.cfg, sessions, logs, time.Now())

	existing, err := svc.profiles.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	profile := model.NewProfile(userID)
	if existing != nil {
		profile.NotificationSettings = existing.NotificationSettings
		utils.TrackXPAwarded(snap.Experience - existing.Experience)
	} else {
		utils.TrackXPAwarded(snap.Experience)
	}

	profile.Experience = snap.Experience
	profile.Level = snap.Level
	profile.TreesPlanted = snap.TreesPlanted
	profile.TotalFocusMinutes = snap.TotalFocusMinutes
	profile.CharacterType = CharacterForTrees(snap.TreesPlanted)
	profile.CurrentStreak = snap.Streak
	profile.UpdatedAt = time.Now()

	if err := svc.profiles.UpsertProfile(ctx, profile); err != nil {
		return err
	}

	if err := svc.unlockAchievements(ctx, userID, snap); err != nil {
		return err
	}

	if svc.cache != nil {
		if err := svc.cache.SetProfile(ctx, profile); err != nil {
			// The Mongo document is authoritative; a cache miss just
			// costs the next read a lookup.
			utils.TrackError("cache", "profile_cache_write_failed")
		}
	}

	return nil
}

func (svc *ScoringService) unlockAchievements(ctx context.Context, userID string, snap DerivedSnapshot) error {
	earned, err := svc.achievements.GetEarnedBadgeTypes(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, rule := range AchievementRules(svc.cfg) {
		if earned[rule.BadgeType] || !rule.Unlocked(snap) {
			continue
		}
		achievement := &model.Achievement{
			AchievementID: utils.GenerateID(),
			UserID:        userID,
			BadgeType:     rule.BadgeType,
			Title:         rule.Title,
			Description:   rule.Description,
			Icon:          rule.Icon,
			EarnedAt:      now,
		}
		if err := svc.achievements.InsertAchievement(ctx, achievement); err != nil {
			return err
		}
		utils.TrackAchievementUnlocked(rule.BadgeType)
	}
	return nil
}

// GetProfile serves the derived snapshot, preferring the cache. A user
// with no ledger activity yet gets a fresh level-1 profile.
func (svc *ScoringService) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	if svc.cache != nil {
		if cached, err := svc.cache.GetProfile(ctx, userID); err == nil && cached != nil {
			return cached, nil
		}
	}

	profile, err := svc.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = model.NewProfile(userID)
	}

	if svc.cache != nil {
		if err := svc.cache.SetProfile(ctx, profile); err != nil {
			utils.TrackError("cache", "profile_cache_write_failed")
		}
	}
	return profile, nil
}

// UpdateNotificationSettings edits the one caller-writable profile field
// and invalidates the cached snapshot.
func (svc *ScoringService) UpdateNotificationSettings(ctx context.Context, userID string, settings model.NotificationSettings) (*model.Profile, error) {
	profile, err := svc.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if profile == nil {
		// First write for this user; seed the default profile.
		profile = model.NewProfile(userID)
		profile.NotificationSettings = settings
		if err := svc.profiles.UpsertProfile(ctx, profile); err != nil {
			return nil, err
		}
	} else {
		profile.NotificationSettings = settings
		if err := svc.profiles.UpdateNotificationSettings(ctx, userID, settings); err != nil {
			return nil, err
		}
	}

	// Drop the cached snapshot; the next read repopulates it.
	if svc.cache != nil {
		if err := svc.cache.InvalidateProfile(ctx, userID); err != nil {
			utils.TrackError("cache", "profile_cache_invalidate_failed")
		}
	}
	return profile, nil
}
