package usecase

import (
	"errors"
	"testing"

	"main/model"
)

func TestValidateSession(t *testing.T) {
	valid := func() *model.FocusSession {
		return &model.FocusSession{
			UserID:          "user-1",
			SessionType:     model.SessionWork,
			DurationMinutes: 25,
			Subject:         "Math",
			Date:            "2026-03-10",
		}
	}

	if err := validateSession(valid()); err != nil {
		t.Fatalf("valid session rejected: %v", err)
	}

	t.Run("MissingUser", func(t *testing.T) {
		s := valid()
		s.UserID = ""
		if err := validateSession(s); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("NonPositiveDuration", func(t *testing.T) {
		s := valid()
		s.DurationMinutes = 0
		if err := validateSession(s); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("BadDate", func(t *testing.T) {
		s := valid()
		s.Date = "03/10/2026"
		if err := validateSession(s); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("WorkWithoutSubject", func(t *testing.T) {
		s := valid()
		s.Subject = ""
		if err := validateSession(s); !errors.Is(err, model.ErrMissingSubject) {
			t.Fatalf("expected ErrMissingSubject, got %v", err)
		}
	})

	t.Run("BreakWithSubject", func(t *testing.T) {
		s := valid()
		s.SessionType = model.SessionBreak
		if err := validateSession(s); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("BreakWithoutSubject", func(t *testing.T) {
		s := valid()
		s.SessionType = model.SessionBreak
		s.Subject = ""
		if err := validateSession(s); err != nil {
			t.Fatalf("valid break rejected: %v", err)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		s := valid()
		s.SessionType = "nap"
		s.Subject = ""
		if err := validateSession(s); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}

func TestValidateStudyLog(t *testing.T) {
	valid := func() *model.StudyLog {
		return &model.StudyLog{
			UserID:           "user-1",
			Subject:          "Math",
			QuestionsSolved:  20,
			CorrectAnswers:   15,
			TimeSpentMinutes: 30,
			Date:             "2026-03-10",
		}
	}

	if err := validateStudyLog(valid()); err != nil {
		t.Fatalf("valid log rejected: %v", err)
	}

	t.Run("MissingSubject", func(t *testing.T) {
		l := valid()
		l.Subject = ""
		if err := validateStudyLog(l); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("CorrectExceedsSolved", func(t *testing.T) {
		l := valid()
		l.CorrectAnswers = 21
		if err := validateStudyLog(l); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("NegativeQuestions", func(t *testing.T) {
		l := valid()
		l.QuestionsSolved = -1
		l.CorrectAnswers = -1
		if err := validateStudyLog(l); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("NegativeTime", func(t *testing.T) {
		l := valid()
		l.TimeSpentMinutes = -5
		if err := validateStudyLog(l); !errors.Is(err, model.ErrValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("ZeroQuestionsAllowed", func(t *testing.T) {
		l := valid()
		l.QuestionsSolved = 0
		l.CorrectAnswers = 0
		if err := validateStudyLog(l); err != nil {
			t.Fatalf("reading-only log rejected: %v", err)
		}
	})
}
