package progression

import "time"

// Snapshot is a point-in-time copy of a user's progress counters. The engine
// never reads or writes storage itself: callers load a Snapshot, run it
// through the evaluation functions and persist whatever comes back.
type Snapshot struct {
	XP               int64
	Streak           int
	Gold             int64
	DailyXP          int64
	DailyLessons     int
	ClaimedMissions  []string
	LastMissionReset time.Time
	LastLesson       time.Time
}

// HasClaimed reports whether the mission id is already in the claimed set.
func (s Snapshot) HasClaimed(missionID string) bool {
	for _, id := range s.ClaimedMissions {
		if id == missionID {
			return true
		}
	}
	return false
}

type MissionType int

const (
	MissionXP MissionType = iota
	MissionStreak
	MissionWildcard
)

func (t MissionType) String() string {
	switch t {
	case MissionXP:
		return "xp"
	case MissionStreak:
		return "streak"
	case MissionWildcard:
		return "wildcard"
	}
	return "unknown"
}

// Mission is a static daily objective. Instances carry no stored progress;
// progress is derived from a Snapshot on every evaluation.
type Mission struct {
	ID     string
	Title  string
	Type   MissionType
	Target int64
	Reward int64
}

// MissionStatus is the evaluated state of one mission against a snapshot.
type MissionStatus struct {
	Mission
	Progress  int64
	Completed bool
	Claimed   bool
}

// ClaimResult describes the outcome of a reward claim. Invalid claims are
// not errors: the zero value (Claimed=false) is the defined no-op result.
type ClaimResult struct {
	Claimed bool
	Reward  int64
}

// Badge is a permanent achievement marker. Earned state is recomputed from
// the current counters on every read and never persisted.
type Badge struct {
	ID          string
	Label       string
	Description string
	Earned      func(xp int64, streak int, dailyXP int64) bool
}

type BadgeStatus struct {
	ID          string
	Label       string
	Description string
	Earned      bool
}

type QuestionType string

const (
	QuestionMultiple QuestionType = "multiple"
	QuestionWrite    QuestionType = "write"
	QuestionText     QuestionType = "text"
)

// SessionQuestion is the in-memory form of a question used by lesson and
// drill sessions.
type SessionQuestion struct {
	ID      int64
	Number  int
	Type    QuestionType
	Prompt  string
	Options []string
	Answer  string
	Hint    string
	Image   string
}
