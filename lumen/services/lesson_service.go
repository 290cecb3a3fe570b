package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories"
	"github.com/vantagelearn/lumen/lumen/progression"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrLessonEmpty     = errors.New("lesson has no questions")
)

// CollectResult is what the lesson runner shows after collecting XP.
// Collected=false means the session was already collected; the caller
// renders the previous state unchanged.
type CollectResult struct {
	Collected bool  `json:"collected"`
	XPAwarded int64 `json:"xp_awarded"`
	FirstTime bool  `json:"first_time"`
	NewXP     int64 `json:"new_xp"`
	Streak    int   `json:"streak"`
}

// LessonService runs lesson sessions: it fixes the per-session randomness
// (variant selection, firstTime flag) at start, grades answers against the
// in-memory session and persists the collected XP in one transaction.
type LessonService struct {
	userRepo     repositories.UserRepository
	lessonRepo   repositories.LessonRepository
	questionRepo repositories.QuestionRepository
	logRepo      repositories.LessonLogRepository
	sessions     *SessionStore
	newID        IDFunc
	now          func() time.Time
}

func NewLessonService(
	userRepo repositories.UserRepository,
	lessonRepo repositories.LessonRepository,
	questionRepo repositories.QuestionRepository,
	logRepo repositories.LessonLogRepository,
	sessions *SessionStore,
	newID IDFunc,
) *LessonService {
	return &LessonService{
		userRepo:     userRepo,
		lessonRepo:   lessonRepo,
		questionRepo: questionRepo,
		logRepo:      logRepo,
		sessions:     sessions,
		newID:        newID,
		now:          time.Now,
	}
}

// StartSession builds a lesson session: one variant per question number,
// chosen at random and fixed until the session ends, with the firstTime
// flag resolved once from the completion log.
func (s *LessonService) StartSession(ctx context.Context, userID, lessonID int64) (string, *progression.LessonSession, error) {
	if _, err := s.lessonRepo.GetByID(ctx, lessonID); err != nil {
		return "", nil, fmt.Errorf("failed to get lesson %d: %w", lessonID, err)
	}

	rows, err := s.questionRepo.GetByLessonID(ctx, lessonID)
	if err != nil {
		return "", nil, err
	}
	if len(rows) == 0 {
		return "", nil, ErrLessonEmpty
	}

	completed, err := s.logRepo.HasCompletion(ctx, userID, lessonID)
	if err != nil {
		return "", nil, err
	}

	session := progression.NewLessonSession(lessonID, toSessionQuestions(rows), !completed)
	id := s.sessions.PutLesson(userID, session)

	slog.Debug("Lesson session started",
		slog.String("type", "sys"),
		slog.Int64("user_id", userID),
		slog.Int64("lesson_id", lessonID),
		slog.Int("questions", len(session.Questions)),
		slog.Bool("first_time", session.FirstTime))
	return id, session, nil
}

// Answer grades one answer within a session. Unlimited retries; grading is
// purely in-memory.
func (s *LessonService) Answer(ctx context.Context, userID int64, sessionID string, questionID int64, given string) (bool, error) {
	session, ok := s.sessions.GetLesson(sessionID, userID)
	if !ok {
		return false, ErrSessionNotFound
	}
	return session.CheckAnswer(questionID, given), nil
}

// Collect closes the session and persists the award: XP, daily counters,
// streak and the completion log row land in a single transaction. A second
// collect for the same session is a no-op.
func (s *LessonService) Collect(ctx context.Context, userID int64, sessionID string) (*CollectResult, error) {
	session, ok := s.sessions.GetLesson(sessionID, userID)
	if !ok {
		return nil, ErrSessionNotFound
	}

	total, ok := session.Collect()
	if !ok {
		return &CollectResult{}, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		session.Uncollect()
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	now := s.now()
	snapshot, _ := progression.ResetDaily(SnapshotOf(user), now)
	snapshot.XP += total
	snapshot.DailyXP += total
	snapshot.DailyLessons++
	snapshot.Streak = progression.NextStreak(snapshot.Streak, user.LastLessonAt, now)
	applySnapshot(user, snapshot)
	user.LastLessonAt = now

	log := &models.LessonLog{
		ID:        s.newID(),
		UserID:    userID,
		LessonID:  session.LessonID,
		XP:        total,
		CreatedAt: now,
	}
	if err := s.logRepo.RecordCompletion(ctx, user, log); err != nil {
		// Re-arm the session so the client can retry the collect; otherwise
		// the latch would swallow the XP after a transient write failure.
		session.Uncollect()
		return nil, err
	}
	s.sessions.Remove(sessionID)

	slog.Info("Lesson completed",
		slog.String("type", "sys"),
		slog.Int64("user_id", userID),
		slog.Int64("lesson_id", session.LessonID),
		slog.Int64("xp_awarded", total),
		slog.Bool("first_time", session.FirstTime))

	return &CollectResult{
		Collected: true,
		XPAwarded: total,
		FirstTime: session.FirstTime,
		NewXP:     user.XP,
		Streak:    user.Streak,
	}, nil
}

func toSessionQuestions(rows []*models.Question) []progression.SessionQuestion {
	questions := make([]progression.SessionQuestion, 0, len(rows))
	for _, q := range rows {
		questions = append(questions, progression.SessionQuestion{
			ID:      q.ID,
			Number:  q.Number,
			Type:    progression.QuestionType(q.Type),
			Prompt:  q.Prompt,
			Options: q.Options,
			Answer:  q.Answer,
			Hint:    q.Hint,
			Image:   q.Image,
		})
	}
	return questions
}
