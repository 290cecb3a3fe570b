package progression

import "testing"

func fiveQuestions() []SessionQuestion {
	return []SessionQuestion{
		{ID: 1, Number: 1, Type: QuestionMultiple, Options: []string{"a", "b"}, Answer: "a"},
		{ID: 2, Number: 2, Type: QuestionMultiple, Options: []string{"a", "b"}, Answer: "b"},
		{ID: 3, Number: 3, Type: QuestionMultiple, Options: []string{"a", "b"}, Answer: "a"},
		{ID: 4, Number: 4, Type: QuestionMultiple, Options: []string{"a", "b"}, Answer: "b"},
		{ID: 5, Number: 5, Type: QuestionMultiple, Options: []string{"a", "b"}, Answer: "a"},
	}
}

func answerAll(t *testing.T, s *LessonSession) {
	t.Helper()
	for _, q := range s.Questions {
		if !s.CheckAnswer(q.ID, q.Answer) {
			t.Fatalf("correct answer rejected for question %d", q.ID)
		}
	}
}

func Test_LessonSession_FirstTimeXP(t *testing.T) {
	s := NewLessonSession(7, fiveQuestions(), true)
	answerAll(t, s)

	total, ok := s.Collect()
	if !ok {
		t.Fatal("first collect rejected")
	}
	if total != 45 {
		t.Errorf("first-time total = %d, want 45 (5*3 + 30)", total)
	}
}

func Test_LessonSession_RepeatXP(t *testing.T) {
	s := NewLessonSession(7, fiveQuestions(), false)
	answerAll(t, s)

	total, ok := s.Collect()
	if !ok {
		t.Fatal("first collect rejected")
	}
	if total != 5 {
		t.Errorf("repeat total = %d, want 5 (5*1 + 0)", total)
	}
}

func Test_LessonSession_DoubleCollect(t *testing.T) {
	s := NewLessonSession(7, fiveQuestions(), true)
	answerAll(t, s)

	if _, ok := s.Collect(); !ok {
		t.Fatal("first collect rejected")
	}
	if total, ok := s.Collect(); ok || total != 0 {
		t.Errorf("second collect = (%d, %v), want no-op", total, ok)
	}
}

func Test_LessonSession_UncollectReArms(t *testing.T) {
	s := NewLessonSession(7, fiveQuestions(), true)
	answerAll(t, s)

	first, ok := s.Collect()
	if !ok {
		t.Fatal("first collect rejected")
	}

	s.Uncollect()

	again, ok := s.Collect()
	if !ok {
		t.Fatal("collect after Uncollect rejected")
	}
	if again != first {
		t.Errorf("re-armed collect = %d, want %d", again, first)
	}
	if _, ok := s.Collect(); ok {
		t.Error("latch not restored after re-armed collect")
	}
}

func Test_LessonSession_RetryCountsOnce(t *testing.T) {
	s := NewLessonSession(7, fiveQuestions(), false)
	q := s.Questions[0]

	if s.CheckAnswer(q.ID, "wrong") {
		t.Fatal("wrong answer accepted")
	}
	if !s.CheckAnswer(q.ID, q.Answer) {
		t.Fatal("correct answer rejected after retry")
	}
	if !s.CheckAnswer(q.ID, q.Answer) {
		t.Fatal("repeat correct answer rejected")
	}
	if s.CorrectCount() != 1 {
		t.Errorf("CorrectCount() = %d, want 1", s.CorrectCount())
	}
}

func Test_LessonSession_VariantSelection(t *testing.T) {
	pool := []SessionQuestion{
		{ID: 10, Number: 1, Type: QuestionMultiple, Answer: "a"},
		{ID: 11, Number: 1, Type: QuestionMultiple, Answer: "b"},
		{ID: 12, Number: 1, Type: QuestionMultiple, Answer: "c"},
		{ID: 20, Number: 2, Type: QuestionMultiple, Answer: "a"},
	}

	for run := 0; run < 25; run++ {
		s := NewLessonSession(3, pool, false)
		if len(s.Questions) != 2 {
			t.Fatalf("got %d questions, want one per number", len(s.Questions))
		}
		if s.Questions[0].Number != 1 || s.Questions[1].Number != 2 {
			t.Fatalf("questions out of order: %+v", s.Questions)
		}
		if id := s.Questions[0].ID; id != 10 && id != 11 && id != 12 {
			t.Fatalf("selected variant %d not in group", id)
		}

		// Selection stays fixed for the session.
		first := s.Questions[0].ID
		if q, _ := s.Question(0); q.ID != first {
			t.Fatalf("variant changed mid-session: %d vs %d", q.ID, first)
		}
	}
}

func Test_LessonSession_WriteAnswerNormalized(t *testing.T) {
	pool := []SessionQuestion{
		{ID: 1, Number: 1, Type: QuestionWrite, Answer: "Photosynthesis"},
	}
	s := NewLessonSession(1, pool, false)

	if !s.CheckAnswer(1, "  photosynthesis ") {
		t.Error("normalized write answer rejected")
	}
}

func Test_LessonSession_InformationalNotGraded(t *testing.T) {
	pool := []SessionQuestion{
		{ID: 1, Number: 1, Type: QuestionText, Prompt: "Read this first"},
		{ID: 2, Number: 2, Type: QuestionMultiple, Answer: "a"},
	}
	s := NewLessonSession(1, pool, false)

	if s.CheckAnswer(1, "anything") {
		t.Error("informational question was graded")
	}
}
