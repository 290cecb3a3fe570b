package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vantagelearn/lumen/lumen/database/repositories"
	"github.com/vantagelearn/lumen/lumen/progression"
)

var ErrNoDrillQuestions = errors.New("no questions available for drill")

// DrillSummary is the session-end state: drills are practice only, so the
// best streak is all there is to report.
type DrillSummary struct {
	Questions  int `json:"questions"`
	Answered   int `json:"answered"`
	BestStreak int `json:"best_streak"`
}

// DrillService runs practice drills over a subject/topic question pool.
// Drills never touch the user's counters.
type DrillService struct {
	questionRepo repositories.QuestionRepository
	sessions     *SessionStore
}

func NewDrillService(questionRepo repositories.QuestionRepository, sessions *SessionStore) *DrillService {
	return &DrillService{questionRepo: questionRepo, sessions: sessions}
}

// Start samples up to count questions for the subject/topic and opens a
// session.
func (s *DrillService) Start(ctx context.Context, userID int64, subject, topic string, count int) (string, *progression.DrillSession, error) {
	rows, err := s.questionRepo.GetBySubjectTopic(ctx, subject, topic)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load drill pool: %w", err)
	}

	session := progression.NewDrillSession(toSessionQuestions(rows), count)
	if len(session.Questions) == 0 {
		return "", nil, ErrNoDrillQuestions
	}

	id := s.sessions.PutDrill(userID, session)
	slog.Debug("Drill session started",
		slog.String("type", "sys"),
		slog.Int64("user_id", userID),
		slog.String("subject", subject),
		slog.String("topic", topic),
		slog.Int("questions", len(session.Questions)))
	return id, session, nil
}

func (s *DrillService) Answer(ctx context.Context, userID int64, sessionID, given string) (progression.DrillAnswer, error) {
	session, ok := s.sessions.GetDrill(sessionID, userID)
	if !ok {
		return progression.DrillAnswer{}, ErrSessionNotFound
	}
	return session.Answer(given), nil
}

func (s *DrillService) Hint(ctx context.Context, userID int64, sessionID string) (string, error) {
	session, ok := s.sessions.GetDrill(sessionID, userID)
	if !ok {
		return "", ErrSessionNotFound
	}
	hint, ok := session.ShowHint()
	if !ok {
		return "", ErrSessionNotFound
	}
	return hint, nil
}

func (s *DrillService) Current(ctx context.Context, userID int64, sessionID string) (progression.SessionQuestion, bool, error) {
	session, ok := s.sessions.GetDrill(sessionID, userID)
	if !ok {
		return progression.SessionQuestion{}, false, ErrSessionNotFound
	}
	q, more := session.Current()
	return q, more, nil
}

// Finish closes the session and returns the summary.
func (s *DrillService) Finish(ctx context.Context, userID int64, sessionID string) (*DrillSummary, error) {
	session, ok := s.sessions.GetDrill(sessionID, userID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.sessions.Remove(sessionID)

	return &DrillSummary{
		Questions:  len(session.Questions),
		Answered:   session.Index,
		BestStreak: session.BestStreak,
	}, nil
}
