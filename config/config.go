package config

import (
	"main/utils"
	"time"
)

type DatabaseConfig struct {
	URI             string
	MaxPoolSize     uint64
	MinPoolSize     uint64
	MaxConnIdleTime time.Duration
	DatabaseName    string
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URI:             utils.GetEnvAsString("MONGO_URI", "mongodb://localhost:27017"),
		MaxPoolSize:     utils.GetEnvAsUint64("MONGO_MAX_POOL_SIZE", 100),
		MinPoolSize:     utils.GetEnvAsUint64("MONGO_MIN_POOL_SIZE", 10),
		MaxConnIdleTime: utils.GetEnvAsDuration("MONGO_MAX_CONN_IDLE_TIME", 60*time.Second),
		DatabaseName:    utils.GetEnvAsString("MONGO_DB", "studyfocus"),
	}
}

type RedisConfig struct {
	URL string
}

func LoadRedisConfig() RedisConfig {
	return RedisConfig{
		URL: utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
	}
}

// TimerConfig holds the pomodoro state machine knobs.
type TimerConfig struct {
	// WorkDuration and BreakDuration are the nominal phase lengths.
	WorkDuration  time.Duration
	BreakDuration time.Duration

	// AutoContinue controls the completion policy: false (the default)
	// halts the timer after a completed phase and waits for an explicit
	// start; true re-arms and keeps running into the flipped phase.
	AutoContinue bool
}

func LoadTimerConfig() TimerConfig {
	return TimerConfig{
		WorkDuration:  time.Duration(utils.GetEnvAsInt("WORK_DURATION_SECONDS", 1500)) * time.Second,
		BreakDuration: time.Duration(utils.GetEnvAsInt("BREAK_DURATION_SECONDS", 300)) * time.Second,
		AutoContinue:  utils.GetEnvAsBool("TIMER_AUTO_CONTINUE", false),
	}
}

// ScoringConfig holds the gamification derivation knobs.
type ScoringConfig struct {
	XPPerSession       int // XP per completed work session
	XPPerCorrectAnswer int // XP per correct study-log answer
	XPPerLevel         int // XP needed for one level
	TreeLevelInterval  int // a tree is planted each time level crosses a multiple of this
	StreakGraceDays    int // days a streak may lag behind today before it resets

	// Achievement thresholds (the rule table is fixed, the numbers are not)
	MarathonMinutes       int
	SharpshooterAccuracy  int
	SharpshooterQuestions int
}

func LoadScoringConfig() ScoringConfig {
	return ScoringConfig{
		XPPerSession:          utils.GetEnvAsInt("XP_PER_SESSION", 10),
		XPPerCorrectAnswer:    utils.GetEnvAsInt("XP_PER_CORRECT_ANSWER", 1),
		XPPerLevel:            utils.GetEnvAsInt("XP_PER_LEVEL", 100),
		TreeLevelInterval:     utils.GetEnvAsInt("TREE_LEVEL_INTERVAL", 5),
		StreakGraceDays:       utils.GetEnvAsInt("STREAK_GRACE_DAYS", 1),
		MarathonMinutes:       utils.GetEnvAsInt("ACHIEVEMENT_MARATHON_MINUTES", 600),
		SharpshooterAccuracy:  utils.GetEnvAsInt("ACHIEVEMENT_SHARPSHOOTER_ACCURACY", 90),
		SharpshooterQuestions: utils.GetEnvAsInt("ACHIEVEMENT_SHARPSHOOTER_QUESTIONS", 50),
	}
}
