package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories/mock"
)

func lessonQuestions() []*models.Question {
	return []*models.Question{
		{ID: 11, LessonID: 5, Number: 1, Type: models.QuestionTypeMultiple, Prompt: "2+2?", Options: []string{"3", "4"}, Answer: "4"},
		{ID: 12, LessonID: 5, Number: 2, Type: models.QuestionTypeWrite, Prompt: "Capital of France?", Answer: "Paris"},
	}
}

type lessonFixture struct {
	userRepo     *mock.MockUserRepository
	lessonRepo   *mock.MockLessonRepository
	questionRepo *mock.MockQuestionRepository
	logRepo      *mock.MockLessonLogRepository
	service      *LessonService
}

func newLessonFixture(t *testing.T) *lessonFixture {
	ctrl := gomock.NewController(t)
	f := &lessonFixture{
		userRepo:     mock.NewMockUserRepository(ctrl),
		lessonRepo:   mock.NewMockLessonRepository(ctrl),
		questionRepo: mock.NewMockQuestionRepository(ctrl),
		logRepo:      mock.NewMockLessonLogRepository(ctrl),
	}
	nextID := int64(1000)
	f.service = NewLessonService(f.userRepo, f.lessonRepo, f.questionRepo, f.logRepo, NewSessionStore(), func() int64 {
		nextID++
		return nextID
	})
	f.service.now = fixedNow
	return f
}

func (f *lessonFixture) expectStart(userID, lessonID int64, completed bool) {
	f.lessonRepo.EXPECT().GetByID(gomock.Any(), lessonID).Return(&models.Lesson{ID: lessonID}, nil)
	f.questionRepo.EXPECT().GetByLessonID(gomock.Any(), lessonID).Return(lessonQuestions(), nil)
	f.logRepo.EXPECT().HasCompletion(gomock.Any(), userID, lessonID).Return(completed, nil)
}

func TestLessonService_StartSession(t *testing.T) {
	t.Run("first run is marked first time", func(t *testing.T) {
		f := newLessonFixture(t)
		f.expectStart(1, 5, false)

		id, session, err := f.service.StartSession(context.Background(), 1, 5)
		if err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}
		if id == "" {
			t.Error("StartSession() returned empty session id")
		}
		if !session.FirstTime {
			t.Error("StartSession() FirstTime = false, want true")
		}
		if len(session.Questions) != 2 {
			t.Errorf("StartSession() questions = %d, want 2", len(session.Questions))
		}
	})

	t.Run("repeat run is not first time", func(t *testing.T) {
		f := newLessonFixture(t)
		f.expectStart(1, 5, true)

		_, session, err := f.service.StartSession(context.Background(), 1, 5)
		if err != nil {
			t.Fatalf("StartSession() error = %v", err)
		}
		if session.FirstTime {
			t.Error("StartSession() FirstTime = true, want false")
		}
	})

	t.Run("empty lesson is rejected", func(t *testing.T) {
		f := newLessonFixture(t)
		f.lessonRepo.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&models.Lesson{ID: 7}, nil)
		f.questionRepo.EXPECT().GetByLessonID(gomock.Any(), int64(7)).Return(nil, nil)

		if _, _, err := f.service.StartSession(context.Background(), 1, 7); err != ErrLessonEmpty {
			t.Errorf("StartSession() error = %v, want ErrLessonEmpty", err)
		}
	})
}

func TestLessonService_Answer(t *testing.T) {
	f := newLessonFixture(t)
	f.expectStart(1, 5, false)

	id, _, err := f.service.StartSession(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}

	correct, err := f.service.Answer(context.Background(), 1, id, 11, "4")
	if err != nil || !correct {
		t.Errorf("Answer(correct) = %v, %v, want true, nil", correct, err)
	}
	correct, err = f.service.Answer(context.Background(), 1, id, 12, "  paris ")
	if err != nil || !correct {
		t.Errorf("Answer(case-insensitive write) = %v, %v, want true, nil", correct, err)
	}

	if _, err := f.service.Answer(context.Background(), 2, id, 11, "4"); err != ErrSessionNotFound {
		t.Errorf("Answer() with wrong user error = %v, want ErrSessionNotFound", err)
	}
	if _, err := f.service.Answer(context.Background(), 1, "missing", 11, "4"); err != ErrSessionNotFound {
		t.Errorf("Answer() with unknown session error = %v, want ErrSessionNotFound", err)
	}
}

func TestLessonService_Collect(t *testing.T) {
	f := newLessonFixture(t)
	f.expectStart(1, 5, false)

	id, _, err := f.service.StartSession(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	for _, answer := range []struct {
		questionID int64
		given      string
	}{{11, "4"}, {12, "Paris"}} {
		if _, err := f.service.Answer(context.Background(), 1, id, answer.questionID, answer.given); err != nil {
			t.Fatalf("Answer() error = %v", err)
		}
	}

	f.userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(&models.User{
		ID:               1,
		XP:               50,
		Streak:           2,
		LastLessonAt:     fixedNow().AddDate(0, 0, -1),
		LastMissionReset: fixedNow().Add(-time.Hour),
	}, nil)

	var recorded *models.User
	f.logRepo.EXPECT().
		RecordCompletion(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User, log *models.LessonLog) error {
			recorded = user
			if log.LessonID != 5 || log.UserID != 1 {
				t.Errorf("RecordCompletion log = %+v", log)
			}
			if log.ID == 0 {
				t.Error("RecordCompletion log has no id")
			}
			// 2 first-time questions at 3 XP plus the 30 XP bonus.
			if log.XP != 36 {
				t.Errorf("RecordCompletion log.XP = %d, want 36", log.XP)
			}
			return nil
		})

	result, err := f.service.Collect(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if !result.Collected || result.XPAwarded != 36 || !result.FirstTime {
		t.Errorf("Collect() = %+v, want collected 36 XP first time", result)
	}
	if recorded.XP != 86 {
		t.Errorf("persisted XP = %d, want 86", recorded.XP)
	}
	if recorded.Streak != 3 {
		t.Errorf("persisted streak = %d, want 3 (yesterday's activity extends it)", recorded.Streak)
	}
	if recorded.DailyLessonsCompleted != 1 {
		t.Errorf("persisted daily lessons = %d, want 1", recorded.DailyLessonsCompleted)
	}

	// The session is gone after a collect, so a second one cannot pay again.
	if _, err := f.service.Collect(context.Background(), 1, id); err != ErrSessionNotFound {
		t.Errorf("second Collect() error = %v, want ErrSessionNotFound", err)
	}
}

func TestLessonService_CollectRetryAfterWriteFailure(t *testing.T) {
	f := newLessonFixture(t)
	f.expectStart(1, 5, false)

	id, _, err := f.service.StartSession(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("StartSession() error = %v", err)
	}
	for _, answer := range []struct {
		questionID int64
		given      string
	}{{11, "4"}, {12, "Paris"}} {
		if _, err := f.service.Answer(context.Background(), 1, id, answer.questionID, answer.given); err != nil {
			t.Fatalf("Answer() error = %v", err)
		}
	}

	f.userRepo.EXPECT().GetByID(gomock.Any(), int64(1)).DoAndReturn(
		func(_ context.Context, _ int64) (*models.User, error) {
			return &models.User{
				ID:               1,
				XP:               50,
				Streak:           2,
				LastLessonAt:     fixedNow().AddDate(0, 0, -1),
				LastMissionReset: fixedNow().Add(-time.Hour),
			}, nil
		}).Times(2)

	writeErr := errors.New("connection reset")
	gomock.InOrder(
		f.logRepo.EXPECT().
			RecordCompletion(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(writeErr),
		f.logRepo.EXPECT().
			RecordCompletion(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil),
	)

	if _, err := f.service.Collect(context.Background(), 1, id); !errors.Is(err, writeErr) {
		t.Fatalf("Collect() with failing write error = %v, want %v", err, writeErr)
	}

	// The failed write must not burn the award: the session stays re-armed
	// and a retry pays the same XP.
	result, err := f.service.Collect(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("retried Collect() error = %v", err)
	}
	if !result.Collected || result.XPAwarded != 36 {
		t.Errorf("retried Collect() = %+v, want collected 36 XP", result)
	}

	if _, err := f.service.Collect(context.Background(), 1, id); err != ErrSessionNotFound {
		t.Errorf("Collect() after successful retry error = %v, want ErrSessionNotFound", err)
	}
}
