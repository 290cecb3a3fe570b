package services

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/database/repositories/mock"
)

func drillPool() []*models.Question {
	return []*models.Question{
		{ID: 21, Number: 1, Type: models.QuestionTypeMultiple, Prompt: "7*8?", Options: []string{"54", "56"}, Answer: "56", Hint: "Think 7*4 doubled"},
		{ID: 22, Number: 2, Type: models.QuestionTypeWrite, Prompt: "sqrt(81)?", Answer: "9"},
		{ID: 23, Number: 3, Type: models.QuestionTypeText, Prompt: "Read this summary."},
	}
}

func TestDrillService_Run(t *testing.T) {
	repo := mock.NewMockQuestionRepository(gomock.NewController(t))
	repo.EXPECT().GetBySubjectTopic(gomock.Any(), "math", "arithmetic").Return(drillPool(), nil)

	service := NewDrillService(repo, NewSessionStore())
	id, session, err := service.Start(context.Background(), 1, "math", "arithmetic", 10)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	// The text question is informational and never drilled.
	if len(session.Questions) != 2 {
		t.Fatalf("Start() questions = %d, want 2", len(session.Questions))
	}

	answers := map[int64]string{21: "56", 22: "9"}
	for range session.Questions {
		q, more, err := service.Current(context.Background(), 1, id)
		if err != nil || !more {
			t.Fatalf("Current() = %v, %v", more, err)
		}
		result, err := service.Answer(context.Background(), 1, id, answers[q.ID])
		if err != nil {
			t.Fatalf("Answer() error = %v", err)
		}
		if !result.Accepted || !result.Correct {
			t.Errorf("Answer(%d) = %+v, want accepted correct", q.ID, result)
		}
	}

	summary, err := service.Finish(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	if summary.Answered != 2 || summary.BestStreak != 2 {
		t.Errorf("Finish() = %+v, want 2 answered with best streak 2", summary)
	}

	if _, err := service.Finish(context.Background(), 1, id); err != ErrSessionNotFound {
		t.Errorf("Finish() after close error = %v, want ErrSessionNotFound", err)
	}
}

func TestDrillService_HintGate(t *testing.T) {
	repo := mock.NewMockQuestionRepository(gomock.NewController(t))
	repo.EXPECT().GetBySubjectTopic(gomock.Any(), "math", "arithmetic").Return(drillPool()[:1], nil)

	service := NewDrillService(repo, NewSessionStore())
	id, _, err := service.Start(context.Background(), 1, "math", "arithmetic", 1)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	wrong, err := service.Answer(context.Background(), 1, id, "54")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if wrong.Correct || !wrong.HintRequired {
		t.Fatalf("Answer(wrong) = %+v, want hint required", wrong)
	}

	// Further attempts bounce until the hint is shown.
	blocked, err := service.Answer(context.Background(), 1, id, "56")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if blocked.Accepted {
		t.Errorf("Answer() while hint pending = %+v, want rejected", blocked)
	}

	hint, err := service.Hint(context.Background(), 1, id)
	if err != nil {
		t.Fatalf("Hint() error = %v", err)
	}
	if hint != "Think 7*4 doubled" {
		t.Errorf("Hint() = %q", hint)
	}

	retry, err := service.Answer(context.Background(), 1, id, "56")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if !retry.Accepted || !retry.Correct {
		t.Errorf("Answer() after hint = %+v, want accepted correct", retry)
	}
}

func TestDrillService_EmptyPool(t *testing.T) {
	repo := mock.NewMockQuestionRepository(gomock.NewController(t))
	repo.EXPECT().GetBySubjectTopic(gomock.Any(), "art", "history").Return(nil, nil)

	service := NewDrillService(repo, NewSessionStore())
	if _, _, err := service.Start(context.Background(), 1, "art", "history", 5); err != ErrNoDrillQuestions {
		t.Errorf("Start() error = %v, want ErrNoDrillQuestions", err)
	}
}
