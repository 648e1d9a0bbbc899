package usecase

import (
	"context"
	"sync"
	"time"

	"main/model"
	"main/repository"
	"main/utils"
)

// LedgerService guards the append-only ledger. Every append validates
// the record, writes it, and synchronously runs the scoring derivation
// pass; a per-user mutex serializes "append + derive" so at most one
// derivation is in flight per user.
type LedgerService struct {
	sessions  *repository.SessionsRepo
	studyLogs *repository.StudyLogsRepo
	scoring   *ScoringService
	userLocks sync.Map // user id -> *sync.Mutex
}

func NewLedgerService(sessions *repository.SessionsRepo, studyLogs *repository.StudyLogsRepo, scoring *ScoringService) *LedgerService {
	return &LedgerService{
		sessions:  sessions,
		studyLogs: studyLogs,
		scoring:   scoring,
	}
}

func (svc *LedgerService) userLock(userID string) *sync.Mutex {
	lock, _ := svc.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// AppendSession validates and appends a completed session record, then
// re-derives the profile. Invalid records are rejected before any write.
func (svc *LedgerService) AppendSession(ctx context.Context, session *model.FocusSession) error {
	if err := validateSession(session); err != nil {
		utils.TrackError("validation", "invalid_session")
		return err
	}

	if session.SessionID == "" {
		session.SessionID = utils.GenerateID()
	}
	if session.Timestamp.IsZero() {
		session.Timestamp = time.Now()
	}

	lock := svc.userLock(session.UserID)
	lock.Lock()
	defer lock.Unlock()

	if err := svc.sessions.CreateSession(ctx, session); err != nil {
		return err
	}
	utils.TrackSessionCompleted(string(session.SessionType))

	return svc.scoring.Derive(ctx, session.UserID)
}

// AppendStudyLog validates and appends a practice log, then re-derives
// the profile.
func (svc *LedgerService) AppendStudyLog(ctx context.Context, studyLog *model.StudyLog) error {
	if err := validateStudyLog(studyLog); err != nil {
		utils.TrackError("validation", "invalid_study_log")
		return err
	}

	if studyLog.LogID == "" {
		studyLog.LogID = utils.GenerateID()
	}
	if studyLog.Timestamp.IsZero() {
		studyLog.Timestamp = time.Now()
	}

	lock := svc.userLock(studyLog.UserID)
	lock.Lock()
	defer lock.Unlock()

	if err := svc.studyLogs.CreateStudyLog(ctx, studyLog); err != nil {
		return err
	}

	return svc.scoring.Derive(ctx, studyLog.UserID)
}

// ListStudyLogs is the ledger's read side; date and subject are optional
// filters.
func (svc *LedgerService) ListStudyLogs(ctx context.Context, userID, date, subject string) ([]*model.StudyLog, error) {
	if date != "" && !utils.IsValidDate(date) {
		return nil, model.NewValidationError("date must be YYYY-MM-DD")
	}
	return svc.studyLogs.ListStudyLogs(ctx, userID, date, subject)
}

func validateSession(s *model.FocusSession) error {
	if s.UserID == "" {
		return model.NewValidationError("user ID is required")
	}
	if s.DurationMinutes <= 0 {
		return model.NewValidationError("duration_minutes must be positive")
	}
	if !utils.IsValidDate(s.Date) {
		return model.NewValidationError("date must be YYYY-MM-DD")
	}
	switch s.SessionType {
	case model.SessionWork:
		if s.Subject == "" {
			return model.ErrMissingSubject
		}
	case model.SessionBreak:
		if s.Subject != "" {
			return model.NewValidationError("break sessions must not carry a subject")
		}
	default:
		return model.NewValidationError("session_type must be work or break")
	}
	return nil
}

func validateStudyLog(l *model.StudyLog) error {
	if l.UserID == "" {
		return model.NewValidationError("user ID is required")
	}
	if l.Subject == "" {
		return model.NewValidationError("subject is required")
	}
	if l.QuestionsSolved < 0 {
		return model.NewValidationError("questions_solved cannot be negative")
	}
	if l.CorrectAnswers < 0 || l.CorrectAnswers > l.QuestionsSolved {
		return model.NewValidationError("correct_answers must be between 0 and questions_solved")
	}
	if l.TimeSpentMinutes < 0 {
		return model.NewValidationError("time_spent_minutes cannot be negative")
	}
	if !utils.IsValidDate(l.Date) {
		return model.NewValidationError("date must be YYYY-MM-DD")
	}
	return nil
}
