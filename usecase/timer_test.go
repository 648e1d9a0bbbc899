package usecase

import (
	"errors"
	"testing"
	"time"

	"main/config"
	"main/model"
)

func testTimerConfig() config.TimerConfig {
	return config.TimerConfig{
		WorkDuration:  25 * time.Minute,
		BreakDuration: 5 * time.Minute,
	}
}

func TestTimerStartRequiresSubjectForWork(t *testing.T) {
	timer := NewTimer("user-1", testTimerConfig())

	if err := timer.Start(""); !errors.Is(err, model.ErrMissingSubject) {
		t.Fatalf("expected ErrMissingSubject, got %v", err)
	}

	if err := timer.Start("Math"); err != nil {
		t.Fatalf("start with subject failed: %v", err)
	}

	snap := timer.Snapshot()
	if snap.State != TimerRunning || snap.Phase != PhaseWork {
		t.Fatalf("unexpected snapshot after start: %+v", snap)
	}
	if snap.RemainingSeconds != 1500 {
		t.Fatalf("expected 1500 remaining seconds, got %d", snap.RemainingSeconds)
	}
}

func TestTimerDoubleStartFails(t *testing.T) {
	timer := NewTimer("user-1", testTimerConfig())

	if err := timer.Start("Math"); err != nil {
		t.Fatal(err)
	}
	if err := timer.Start("Math"); !errors.Is(err, model.ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestTimerWorkCompletionEmitsOneEvent(t *testing.T) {
	timer := NewTimer("user-1", testTimerConfig())
	if err := timer.Start("Physics"); err != nil {
		t.Fatal(err)
	}

	var events []*SessionCompleted
	for i := 0; i < 1500; i++ {
		event, err := timer.Tick()
		if err != nil {
			t.Fatalf("tick %d failed: %v", i, err)
		}
		if event != nil {
			events = append(events, event)
		}
	}

	if len(events) != 1 {
		t.Fatalf("expected exactly one completion, got %d", len(events))
	}
	event := events[0]
	if event.Phase != PhaseWork || event.Subject != "Physics" || event.DurationMinutes != 25 {
		t.Fatalf("unexpected completion event: %+v", event)
	}
	if event.Date != time.Now().Format("2006-01-02") {
		t.Fatalf("unexpected completion date %q", event.Date)
	}

	// Default policy halts after completion, armed for the break phase.
	snap := timer.Snapshot()
	if snap.State != TimerIdle || snap.Phase != PhaseBreak || snap.RemainingSeconds != 300 {
		t.Fatalf("unexpected post-completion snapshot: %+v", snap)
	}

	if _, err := timer.Tick(); !errors.Is(err, model.ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning after halt, got %v", err)
	}
}

func TestTimerAutoContinueKeepsRunning(t *testing.T) {
	cfg := testTimerConfig()
	cfg.AutoContinue = true
	timer := NewTimer("user-1", cfg)
	if err := timer.Start("Chemistry"); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 1500; i++ {
		if _, err := timer.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	snap := timer.Snapshot()
	if snap.State != TimerRunning || snap.Phase != PhaseBreak || snap.RemainingSeconds != 300 {
		t.Fatalf("unexpected auto-continue snapshot: %+v", snap)
	}
}

func TestTimerBreakCompletionHasNoSubject(t *testing.T) {
	cfg := testTimerConfig()
	cfg.AutoContinue = true
	timer := NewTimer("user-1", cfg)
	if err := timer.Start("History"); err != nil {
		t.Fatal(err)
	}

	// Run through the work phase and into the break phase.
	for i := 0; i < 1500+299; i++ {
		if _, err := timer.Tick(); err != nil {
			t.Fatal(err)
		}
	}
	event, err := timer.Tick()
	if err != nil {
		t.Fatal(err)
	}
	if event == nil {
		t.Fatal("expected break completion event")
	}
	if event.Phase != PhaseBreak || event.Subject != "" || event.DurationMinutes != 5 {
		t.Fatalf("unexpected break event: %+v", event)
	}
}

func TestTimerPauseResumeKeepsRemaining(t *testing.T) {
	timer := NewTimer("user-1", testTimerConfig())
	if err := timer.Start("Math"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if _, err := timer.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	if err := timer.Pause(); err != nil {
		t.Fatal(err)
	}
	if _, err := timer.Tick(); !errors.Is(err, model.ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning while paused, got %v", err)
	}

	// Resuming without a subject keeps the one from the paused run.
	if err := timer.Start(""); err != nil {
		t.Fatal(err)
	}
	snap := timer.Snapshot()
	if snap.RemainingSeconds != 1400 {
		t.Fatalf("expected 1400 remaining after resume, got %d", snap.RemainingSeconds)
	}
	if snap.Subject != "Math" {
		t.Fatalf("expected subject kept across pause, got %q", snap.Subject)
	}
}

func TestTimerPauseWhenIdleFails(t *testing.T) {
	timer := NewTimer("user-1", testTimerConfig())
	if err := timer.Pause(); !errors.Is(err, model.ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}
}

func TestTimerResetDiscardsProgress(t *testing.T) {
	timer := NewTimer("user-1", testTimerConfig())
	if err := timer.Start("Math"); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 42; i++ {
		if _, err := timer.Tick(); err != nil {
			t.Fatal(err)
		}
	}

	timer.Reset()
	snap := timer.Snapshot()
	if snap.State != TimerIdle || snap.RemainingSeconds != 1500 {
		t.Fatalf("unexpected snapshot after reset: %+v", snap)
	}

	// Reset from idle is a no-op, not an error.
	timer.Reset()
}
