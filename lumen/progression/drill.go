package progression

import "math/rand"

// DrillSession is an ungraded practice run over randomly sampled questions.
// No XP or gold is ever awarded for drills.
type DrillSession struct {
	Questions  []SessionQuestion
	Index      int
	Streak     int
	BestStreak int

	hintRequired bool
}

// DrillAnswer is the result of one answer attempt.
type DrillAnswer struct {
	Accepted     bool
	Correct      bool
	HintRequired bool
	Done         bool
}

// SampleQuestions draws up to count questions uniformly without replacement
// from the pool, excluding informational questions: a full shuffle followed
// by a prefix take. count >= pool size returns the entire pool.
func SampleQuestions(pool []SessionQuestion, count int) []SessionQuestion {
	if count <= 0 {
		return nil
	}

	candidates := make([]SessionQuestion, 0, len(pool))
	for _, q := range pool {
		if q.Type != QuestionText {
			candidates = append(candidates, q)
		}
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	if count < len(candidates) {
		candidates = candidates[:count]
	}
	return candidates
}

// NewDrillSession samples the pool and starts a session at the first
// question. An empty sample yields an already-finished session rather than
// an error, so callers can always render an end state.
func NewDrillSession(pool []SessionQuestion, count int) *DrillSession {
	return &DrillSession{Questions: SampleQuestions(pool, count)}
}

// Current returns the question awaiting an answer.
func (d *DrillSession) Current() (SessionQuestion, bool) {
	if d.Done() {
		return SessionQuestion{}, false
	}
	return d.Questions[d.Index], true
}

// Done reports whether every sampled question has been answered correctly.
func (d *DrillSession) Done() bool {
	return d.Index >= len(d.Questions)
}

// HintRequired reports whether a hint must be shown before the next attempt
// is accepted.
func (d *DrillSession) HintRequired() bool {
	return d.hintRequired
}

// ShowHint reveals the current question's hint and clears the hint gate.
func (d *DrillSession) ShowHint() (string, bool) {
	q, ok := d.Current()
	if !ok {
		return "", false
	}
	d.hintRequired = false
	return q.Hint, true
}

// Answer grades an attempt at the current question. A wrong multiple-choice
// answer arms the hint gate: further attempts are rejected until ShowHint is
// called, and the gate stays armed across repeated wrong answers. A correct
// answer extends the running streak and advances the session; a wrong one
// resets the streak to zero. The best streak seen is retained for the
// session-end summary.
func (d *DrillSession) Answer(given string) DrillAnswer {
	q, ok := d.Current()
	if !ok {
		return DrillAnswer{Done: true}
	}
	if d.hintRequired {
		return DrillAnswer{HintRequired: true}
	}

	if !answerMatches(q, given) {
		d.Streak = 0
		if q.Type == QuestionMultiple {
			d.hintRequired = true
		}
		return DrillAnswer{Accepted: true, HintRequired: d.hintRequired}
	}

	d.Streak++
	if d.Streak > d.BestStreak {
		d.BestStreak = d.Streak
	}
	d.Index++
	d.hintRequired = false
	return DrillAnswer{Accepted: true, Correct: true, Done: d.Done()}
}
