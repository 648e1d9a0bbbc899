package usecase

import (
	"sync"
	"time"

	"main/config"
	"main/model"
	"main/utils"
)

type TimerPhase string

const (
	PhaseWork  TimerPhase = "work"
	PhaseBreak TimerPhase = "break"
)

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerRunning TimerState = "running"
	TimerPaused  TimerState = "paused"
)

// SessionCompleted is emitted exactly once when a running phase counts
// down to zero.
type SessionCompleted struct {
	UserID          string
	Phase           TimerPhase
	Subject         string // empty for break phases
	DurationMinutes int
	Date            string
	CompletedAt     time.Time
}

// TimerSnapshot is the externally visible timer state.
type TimerSnapshot struct {
	Phase            TimerPhase `json:"phase"`
	State            TimerState `json:"state"`
	RemainingSeconds int        `json:"remaining_seconds"`
	Subject          string     `json:"subject,omitempty"`
}

// Timer is a single-user pomodoro countdown state machine. All methods
// take the mutex, so Tick is never interleaved with Start, Pause or
// Reset for the same timer.
//
// Completion policy: by default the timer halts (idle) after a phase
// completes and waits for an explicit Start of the flipped phase.
// With cfg.AutoContinue it re-arms and keeps running instead.
type Timer struct {
	mu        sync.Mutex
	cfg       config.TimerConfig
	userID    string
	phase     TimerPhase
	state     TimerState
	remaining int // seconds
	subject   string
}

func NewTimer(userID string, cfg config.TimerConfig) *Timer {
	return &Timer{
		cfg:       cfg,
		userID:    userID,
		phase:     PhaseWork,
		state:     TimerIdle,
		remaining: int(cfg.WorkDuration.Seconds()),
	}
}

func (t *Timer) nominalSeconds(phase TimerPhase) int {
	if phase == PhaseBreak {
		return int(t.cfg.BreakDuration.Seconds())
	}
	return int(t.cfg.WorkDuration.Seconds())
}

// Start begins or resumes the countdown. A work phase needs a subject:
// either passed here or already present from the paused run being
// resumed. Resuming keeps remaining_seconds; a fresh start re-arms the
// phase's nominal duration.
func (t *Timer) Start(subject string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == TimerRunning {
		return model.ErrAlreadyRunning
	}

	if subject != "" {
		t.subject = subject
	}
	if t.phase == PhaseWork && t.subject == "" {
		return model.ErrMissingSubject
	}

	if t.state != TimerPaused {
		t.remaining = t.nominalSeconds(t.phase)
	}
	t.state = TimerRunning
	return nil
}

// Pause suspends a running countdown, preserving remaining_seconds.
func (t *Timer) Pause() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerRunning {
		return model.ErrNotRunning
	}
	t.state = TimerPaused
	return nil
}

// Reset returns the timer to idle and re-arms the current phase. Nothing
// is logged for an abandoned phase, so no data is discarded.
func (t *Timer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = TimerIdle
	t.remaining = t.nominalSeconds(t.phase)
}

// Tick advances the countdown by one elapsed second. At zero it emits
// the completion event, flips the phase and re-arms; the follow-up state
// depends on the auto-continue policy.
func (t *Timer) Tick() (*SessionCompleted, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != TimerRunning {
		return nil, model.ErrNotRunning
	}

	t.remaining--
	if t.remaining > 0 {
		return nil, nil
	}

	now := time.Now()
	completed := &SessionCompleted{
		UserID:          t.userID,
		Phase:           t.phase,
		DurationMinutes: t.nominalSeconds(t.phase) / 60,
		Date:            utils.DateString(now),
		CompletedAt:     now,
	}
	if t.phase == PhaseWork {
		completed.Subject = t.subject
	}

	if t.phase == PhaseWork {
		t.phase = PhaseBreak
	} else {
		t.phase = PhaseWork
	}
	t.remaining = t.nominalSeconds(t.phase)
	if !t.cfg.AutoContinue {
		t.state = TimerIdle
	}

	return completed, nil
}

// Snapshot returns the current externally visible state.
func (t *Timer) Snapshot() TimerSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return TimerSnapshot{
		Phase:            t.phase,
		State:            t.state,
		RemainingSeconds: t.remaining,
		Subject:          t.subject,
	}
}
