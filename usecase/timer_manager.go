package usecase

import (
	"context"
	"log"
	"sync"
	"time"

	"main/config"
	"main/model"
	"main/utils"
)

// TimerManager owns one Timer per user and drives all running timers
// from a single 1 Hz tick source. Work completions are appended to the
// ledger, which triggers the scoring derivation pass.
type TimerManager struct {
	mu     sync.Mutex
	timers map[string]*Timer
	cfg    config.TimerConfig
	ledger *LedgerService
}

func NewTimerManager(cfg config.TimerConfig, ledger *LedgerService) *TimerManager {
	return &TimerManager{
		timers: make(map[string]*Timer),
		cfg:    cfg,
		ledger: ledger,
	}
}

// GetTimer returns the user's timer, creating it on first use.
func (m *TimerManager) GetTimer(userID string) *Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	timer, ok := m.timers[userID]
	if !ok {
		timer = NewTimer(userID, m.cfg)
		m.timers[userID] = timer
	}
	return timer
}

// Run drives all timers until the context is cancelled.
func (m *TimerManager) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.tickAll(ctx)
		}
	}
}

func (m *TimerManager) tickAll(ctx context.Context) {
	m.mu.Lock()
	timers := make([]*Timer, 0, len(m.timers))
	for _, t := range m.timers {
		timers = append(timers, t)
	}
	m.mu.Unlock()

	for _, timer := range timers {
		completed, err := timer.Tick()
		if err != nil {
			// Idle and paused timers simply don't advance.
			continue
		}
		if completed != nil {
			m.HandleCompletion(ctx, completed)
		}
	}
}

// HandleCompletion forwards a finished phase to the ledger. Only work
// phases produce a session record; break completions are counted but
// not logged.
func (m *TimerManager) HandleCompletion(ctx context.Context, event *SessionCompleted) {
	if event.Phase != PhaseWork {
		utils.TrackSessionCompleted(string(event.Phase))
		return
	}

	session := &model.FocusSession{
		UserID:          event.UserID,
		SessionType:     model.SessionWork,
		DurationMinutes: event.DurationMinutes,
		Subject:         event.Subject,
		Date:            event.Date,
		Timestamp:       event.CompletedAt,
	}
	if err := m.ledger.AppendSession(ctx, session); err != nil {
		log.Printf("Failed to record completed session for user %s: %v", event.UserID, err)
	}
}
