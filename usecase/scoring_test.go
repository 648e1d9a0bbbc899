package usecase

import (
	"testing"
	"time"

	"main/config"
	"main/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScoringConfig() config.ScoringConfig {
	return config.ScoringConfig{
		XPPerSession:          10,
		XPPerCorrectAnswer:    1,
		XPPerLevel:            100,
		TreeLevelInterval:     5,
		StreakGraceDays:       1,
		MarathonMinutes:       600,
		SharpshooterAccuracy:  90,
		SharpshooterQuestions: 50,
	}
}

func workSession(date string, minutes int) *model.FocusSession {
	return &model.FocusSession{
		UserID:          "user-1",
		SessionType:     model.SessionWork,
		DurationMinutes: minutes,
		Subject:         "Math",
		Date:            date,
	}
}

func TestLevelForExperience(t *testing.T) {
	cfg := testScoringConfig()

	assert.Equal(t, 1, LevelForExperience(cfg, 0))
	assert.Equal(t, 1, LevelForExperience(cfg, 99))
	assert.Equal(t, 2, LevelForExperience(cfg, 100))
	assert.Equal(t, 5, LevelForExperience(cfg, 450))
	assert.Equal(t, 11, LevelForExperience(cfg, 1000))
}

func TestTreesAndCharacterProgression(t *testing.T) {
	cfg := testScoringConfig()

	assert.Equal(t, 0, TreesForLevel(cfg, 1))
	assert.Equal(t, 0, TreesForLevel(cfg, 4))
	assert.Equal(t, 1, TreesForLevel(cfg, 5))
	assert.Equal(t, 2, TreesForLevel(cfg, 14))
	assert.Equal(t, 10, TreesForLevel(cfg, 50))

	assert.Equal(t, model.CharacterSeed, CharacterForTrees(0))
	assert.Equal(t, model.CharacterSprout, CharacterForTrees(1))
	assert.Equal(t, model.CharacterSprout, CharacterForTrees(4))
	assert.Equal(t, model.CharacterTree, CharacterForTrees(5))
	assert.Equal(t, model.CharacterTree, CharacterForTrees(9))
	assert.Equal(t, model.CharacterForest, CharacterForTrees(10))
}

func TestComputeStreak(t *testing.T) {
	today := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := func(offset int) string {
		return today.AddDate(0, 0, offset).Format("2006-01-02")
	}

	t.Run("ThreeConsecutiveDays", func(t *testing.T) {
		dates := map[string]bool{day(0): true, day(-1): true, day(-2): true}
		assert.Equal(t, 3, ComputeStreak(dates, today, 1))
	})

	t.Run("GapBreaksStreak", func(t *testing.T) {
		dates := map[string]bool{day(0): true, day(-1): true, day(-3): true}
		assert.Equal(t, 2, ComputeStreak(dates, today, 1))
	})

	t.Run("YesterdayAnchorsWithinGrace", func(t *testing.T) {
		dates := map[string]bool{day(-1): true, day(-2): true}
		assert.Equal(t, 2, ComputeStreak(dates, today, 1))
	})

	t.Run("BeyondGraceResets", func(t *testing.T) {
		dates := map[string]bool{day(-2): true, day(-3): true}
		assert.Equal(t, 0, ComputeStreak(dates, today, 1))
	})

	t.Run("NoActivity", func(t *testing.T) {
		assert.Equal(t, 0, ComputeStreak(map[string]bool{}, today, 1))
	})
}

func TestBuildSnapshot(t *testing.T) {
	cfg := testScoringConfig()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	sessions := []*model.FocusSession{
		workSession("2026-03-09", 25),
		workSession("2026-03-10", 25),
		workSession("2026-03-10", 25),
		{ // breaks never score
			UserID:          "user-1",
			SessionType:     model.SessionBreak,
			DurationMinutes: 5,
			Date:            "2026-03-10",
		},
	}
	logs := []*model.StudyLog{
		{UserID: "user-1", Subject: "Math", QuestionsSolved: 20, CorrectAnswers: 15, TimeSpentMinutes: 30, Date: "2026-03-10"},
		{UserID: "user-1", Subject: "Physics", QuestionsSolved: 10, CorrectAnswers: 7, TimeSpentMinutes: 20, Date: "2026-03-09"},
	}

	snap := BuildSnapshot(cfg, sessions, logs, now)

	assert.Equal(t, 3, snap.WorkSessions)
	assert.Equal(t, 75, snap.TotalFocusMinutes)
	assert.Equal(t, 30, snap.TotalQuestions)
	assert.Equal(t, 22, snap.TotalCorrect)
	assert.Equal(t, 50, snap.TotalStudyMinutes)
	assert.Equal(t, 3*10+22, snap.Experience)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 0, snap.TreesPlanted)
	assert.Equal(t, 2, snap.Streak)

	// The fold is pure; the same ledger yields the same snapshot.
	assert.Equal(t, snap, BuildSnapshot(cfg, sessions, logs, now))
}

func TestAchievementRules(t *testing.T) {
	cfg := testScoringConfig()
	rules := AchievementRules(cfg)
	require.Len(t, rules, 13)

	byBadge := make(map[string]AchievementRule, len(rules))
	for _, rule := range rules {
		require.NotContains(t, byBadge, rule.BadgeType, "duplicate badge type")
		byBadge[rule.BadgeType] = rule
	}

	t.Run("FirstPomodoro", func(t *testing.T) {
		rule := byBadge["first_pomodoro"]
		assert.False(t, rule.Unlocked(DerivedSnapshot{}))
		assert.True(t, rule.Unlocked(DerivedSnapshot{WorkSessions: 1}))
	})

	t.Run("Marathon", func(t *testing.T) {
		rule := byBadge["marathon"]
		assert.False(t, rule.Unlocked(DerivedSnapshot{TotalFocusMinutes: 599}))
		assert.True(t, rule.Unlocked(DerivedSnapshot{TotalFocusMinutes: 600}))
	})

	t.Run("SharpshooterNeedsSampleSize", func(t *testing.T) {
		rule := byBadge["sharpshooter"]
		// Perfect accuracy over too small a sample does not count.
		assert.False(t, rule.Unlocked(DerivedSnapshot{TotalQuestions: 10, TotalCorrect: 10}))
		assert.True(t, rule.Unlocked(DerivedSnapshot{TotalQuestions: 50, TotalCorrect: 45}))
		assert.False(t, rule.Unlocked(DerivedSnapshot{TotalQuestions: 50, TotalCorrect: 44}))
	})

	t.Run("Streaks", func(t *testing.T) {
		snap := DerivedSnapshot{Streak: 7}
		assert.True(t, byBadge["3_day_streak"].Unlocked(snap))
		assert.True(t, byBadge["7_day_streak"].Unlocked(snap))
		assert.False(t, byBadge["30_day_streak"].Unlocked(snap))
	})

	t.Run("Forest", func(t *testing.T) {
		assert.False(t, byBadge["forest"].Unlocked(DerivedSnapshot{TreesPlanted: 9}))
		assert.True(t, byBadge["forest"].Unlocked(DerivedSnapshot{TreesPlanted: 10}))
	})
}
