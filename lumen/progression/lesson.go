package progression

import (
	"math/rand"
	"sort"
	"strings"
)

const (
	xpFirstTimeQuestion = 3
	xpRepeatQuestion    = 1
	xpFirstTimeBonus    = 30
)

// LessonSession is the ephemeral state of one lesson run. It lives only in
// memory; nothing here is persisted until Collect succeeds.
type LessonSession struct {
	LessonID  int64
	FirstTime bool
	Questions []SessionQuestion

	correct   map[int64]bool
	collected bool
}

// NewLessonSession builds a session from the lesson's full question set.
// Questions sharing a number are randomized variants: exactly one is chosen
// uniformly at random per group and stays fixed for the whole session. The
// firstTime flag is fixed here too and never re-evaluated mid-session.
func NewLessonSession(lessonID int64, pool []SessionQuestion, firstTime bool) *LessonSession {
	groups := make(map[int][]SessionQuestion)
	numbers := make([]int, 0)
	for _, q := range pool {
		if _, seen := groups[q.Number]; !seen {
			numbers = append(numbers, q.Number)
		}
		groups[q.Number] = append(groups[q.Number], q)
	}
	sort.Ints(numbers)

	questions := make([]SessionQuestion, 0, len(numbers))
	for _, n := range numbers {
		variants := groups[n]
		questions = append(questions, variants[rand.Intn(len(variants))])
	}

	return &LessonSession{
		LessonID:  lessonID,
		FirstTime: firstTime,
		Questions: questions,
		correct:   make(map[int64]bool),
	}
}

// Question returns the selected variant at position i.
func (s *LessonSession) Question(i int) (SessionQuestion, bool) {
	if i < 0 || i >= len(s.Questions) {
		return SessionQuestion{}, false
	}
	return s.Questions[i], true
}

// CheckAnswer grades an answer against the session's question and records a
// correct result. Retries are unlimited; a question only counts once however
// many attempts it took. Informational questions are never graded.
func (s *LessonSession) CheckAnswer(questionID int64, given string) bool {
	for _, q := range s.Questions {
		if q.ID != questionID || q.Type == QuestionText {
			continue
		}
		if !answerMatches(q, given) {
			return false
		}
		s.correct[q.ID] = true
		return true
	}
	return false
}

// CorrectCount reports how many questions have been answered correctly.
func (s *LessonSession) CorrectCount() int {
	return len(s.correct)
}

// Collected reports whether the session's XP was already collected.
func (s *LessonSession) Collected() bool {
	return s.collected
}

// PerQuestionXP is 3 on a first-ever run of the lesson, 1 on repeats.
func (s *LessonSession) PerQuestionXP() int64 {
	if s.FirstTime {
		return xpFirstTimeQuestion
	}
	return xpRepeatQuestion
}

// Collect closes the session and returns the XP total to persist:
// correct * perQuestion plus the flat first-time bonus. The second and any
// later call is a no-op returning ok=false, guarding against
// double-submission.
func (s *LessonSession) Collect() (total int64, ok bool) {
	if s.collected {
		return 0, false
	}
	s.collected = true

	total = int64(len(s.correct)) * s.PerQuestionXP()
	if s.FirstTime {
		total += xpFirstTimeBonus
	}
	return total, true
}

// Uncollect re-arms a collected session. Callers use it when persisting the
// award fails after Collect already latched, so a retry can collect the same
// total instead of losing it to the double-submission guard.
func (s *LessonSession) Uncollect() {
	s.collected = false
}

func answerMatches(q SessionQuestion, given string) bool {
	switch q.Type {
	case QuestionMultiple:
		return given == q.Answer
	case QuestionWrite:
		return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(q.Answer))
	}
	return false
}
