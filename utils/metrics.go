package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Scoring metrics
	SessionsCompletedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessions_completed_total",
			Help: "Total number of completed pomodoro phases",
		},
		[]string{"session_type"},
	)

	XPAwardedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "xp_awarded_total",
			Help: "Total experience points awarded by derivation passes",
		},
	)

	AchievementsUnlockedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "achievements_unlocked_total",
			Help: "Total achievements unlocked",
		},
		[]string{"badge_type"},
	)

	DerivationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "profile_derivation_duration_seconds",
			Help:    "Duration of profile derivation passes",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type and reason",
		},
		[]string{"type", "reason"},
	)
)

// TrackDBOperation tracks database operation duration
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

// TrackDerivation tracks the duration of a scoring derivation pass
func TrackDerivation() *prometheus.Timer {
	return prometheus.NewTimer(DerivationDuration)
}

// TrackSessionCompleted increments the completed-session counter
func TrackSessionCompleted(sessionType string) {
	SessionsCompletedTotal.WithLabelValues(sessionType).Inc()
}

// TrackXPAwarded records newly awarded experience points
func TrackXPAwarded(xp int) {
	if xp > 0 {
		XPAwardedTotal.Add(float64(xp))
	}
}

// TrackAchievementUnlocked increments the unlock counter for a badge
func TrackAchievementUnlocked(badgeType string) {
	AchievementsUnlockedTotal.WithLabelValues(badgeType).Inc()
}

// TrackError increments the error counter by type and reason
func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}
