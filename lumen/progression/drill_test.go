package progression

import "testing"

func drillPool() []SessionQuestion {
	return []SessionQuestion{
		{ID: 1, Number: 1, Type: QuestionMultiple, Answer: "a"},
		{ID: 2, Number: 2, Type: QuestionMultiple, Answer: "b"},
		{ID: 3, Number: 3, Type: QuestionWrite, Answer: "mitochondria"},
		{ID: 4, Number: 4, Type: QuestionText, Prompt: "informational"},
		{ID: 5, Number: 5, Type: QuestionMultiple, Answer: "c"},
	}
}

func Test_SampleQuestions_WholePool(t *testing.T) {
	pool := drillPool()

	got := SampleQuestions(pool, 10)
	if len(got) != 4 {
		t.Fatalf("sample size = %d, want 4 (pool minus informational)", len(got))
	}

	seen := make(map[int64]int)
	for _, q := range got {
		seen[q.ID]++
		if q.Type == QuestionText {
			t.Errorf("informational question %d sampled", q.ID)
		}
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("question %d sampled %d times", id, n)
		}
	}
}

func Test_SampleQuestions_PrefixTake(t *testing.T) {
	got := SampleQuestions(drillPool(), 2)
	if len(got) != 2 {
		t.Fatalf("sample size = %d, want 2", len(got))
	}
	if got[0].ID == got[1].ID {
		t.Error("duplicate question in sample")
	}
}

func Test_SampleQuestions_InvalidCount(t *testing.T) {
	if got := SampleQuestions(drillPool(), 0); got != nil {
		t.Errorf("SampleQuestions(0) = %v, want nil", got)
	}
	if got := SampleQuestions(drillPool(), -3); got != nil {
		t.Errorf("SampleQuestions(-3) = %v, want nil", got)
	}
}

func Test_DrillSession_StreakTracking(t *testing.T) {
	d := &DrillSession{Questions: []SessionQuestion{
		{ID: 1, Type: QuestionWrite, Answer: "a"},
		{ID: 2, Type: QuestionWrite, Answer: "b"},
		{ID: 3, Type: QuestionWrite, Answer: "c"},
	}}

	d.Answer("a")
	d.Answer("b")
	if d.Streak != 2 || d.BestStreak != 2 {
		t.Fatalf("streak = %d, best = %d, want 2/2", d.Streak, d.BestStreak)
	}

	d.Answer("wrong")
	if d.Streak != 0 {
		t.Errorf("streak after wrong answer = %d, want 0", d.Streak)
	}
	if d.BestStreak != 2 {
		t.Errorf("best streak = %d, want 2 retained", d.BestStreak)
	}

	res := d.Answer("c")
	if !res.Correct || !res.Done {
		t.Errorf("final answer = %+v, want correct and done", res)
	}
	if d.Streak != 1 || d.BestStreak != 2 {
		t.Errorf("final streak = %d, best = %d, want 1/2", d.Streak, d.BestStreak)
	}
}

func Test_DrillSession_HintGate(t *testing.T) {
	d := &DrillSession{Questions: []SessionQuestion{
		{ID: 1, Type: QuestionMultiple, Answer: "a", Hint: "starts with a"},
	}}

	res := d.Answer("b")
	if !res.Accepted || res.Correct {
		t.Fatalf("wrong answer result = %+v", res)
	}
	if !res.HintRequired || !d.HintRequired() {
		t.Fatal("hint gate not armed after wrong multiple-choice answer")
	}

	// Attempts are rejected while the gate is armed, even correct ones.
	if res := d.Answer("a"); res.Accepted {
		t.Fatal("attempt accepted while hint gate armed")
	}

	hint, ok := d.ShowHint()
	if !ok || hint != "starts with a" {
		t.Fatalf("ShowHint() = (%q, %v)", hint, ok)
	}

	if res := d.Answer("a"); !res.Accepted || !res.Correct {
		t.Fatalf("answer after hint = %+v, want accepted and correct", res)
	}
}

func Test_DrillSession_WriteAnswerNoHintGate(t *testing.T) {
	d := &DrillSession{Questions: []SessionQuestion{
		{ID: 1, Type: QuestionWrite, Answer: "osmosis"},
	}}

	if res := d.Answer("diffusion"); res.HintRequired {
		t.Error("hint gate armed for a write question")
	}
	if res := d.Answer("osmosis"); !res.Correct {
		t.Errorf("retry result = %+v", res)
	}
}

func Test_DrillSession_EmptyPool(t *testing.T) {
	d := NewDrillSession(nil, 5)
	if !d.Done() {
		t.Error("empty session not done")
	}
	if res := d.Answer("x"); !res.Done {
		t.Errorf("answer on finished session = %+v", res)
	}
}
