package migration

import (
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Legacy documents as they live in the old Mongo backend. Numeric fields are
// float64 because the old stack stored every number that way.

type LegacyUser struct {
	ID            primitive.ObjectID `bson:"_id"`
	Email         string             `bson:"email"`
	Username      string             `bson:"username"`
	PasswordHash  string             `bson:"password"`
	Admin         bool               `bson:"admin"`
	XP            float64            `bson:"xp"`
	Streak        float64            `bson:"streak"`
	Gold          float64            `bson:"gold"`
	DailyXP       float64            `bson:"dailyxp"`
	DailyLessons  float64            `bson:"dailylessons"`
	ClaimedToday  []string           `bson:"claimedtoday"`
	Subjects      []string           `bson:"subjects"`
	LastReset     time.Time          `bson:"lastreset"`
	LastLesson    time.Time          `bson:"lastlesson"`
	Joined        time.Time          `bson:"joined"`
}

type LegacyLesson struct {
	ID         primitive.ObjectID `bson:"_id"`
	Key        string             `bson:"key"`
	Subject    string             `bson:"subject"`
	Topic      string             `bson:"topic"`
	Title      string             `bson:"title"`
	Desc       string             `bson:"desc"`
	Categories []string           `bson:"categories"`
	Diff       float64            `bson:"diff"`
}

type LegacyQuestion struct {
	ID        primitive.ObjectID `bson:"_id"`
	LessonKey string             `bson:"lessonkey"`
	Number    float64            `bson:"number"`
	Type      string             `bson:"type"`
	Question  string             `bson:"question"`
	Options   []string           `bson:"options"`
	Answer    string             `bson:"answer"`
	Hint      string             `bson:"hint"`
	Image     string             `bson:"image"`
}

type LegacyCompletion struct {
	ID        primitive.ObjectID `bson:"_id"`
	Email     string             `bson:"email"`
	LessonKey string             `bson:"lessonkey"`
	XP        float64            `bson:"xp"`
	Date      time.Time          `bson:"date"`
}

// TableStats tracks per-table import counters.
type TableStats struct {
	Read     int64
	Inserted int64
	Skipped  int64
}

// MigrationStats aggregates the run for the final report.
type MigrationStats struct {
	mu        sync.Mutex
	Tables    map[string]*TableStats
	StartTime time.Time
}

func (s *MigrationStats) table(name string) *TableStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.Tables[name]
	if !ok {
		t = &TableStats{}
		s.Tables[name] = t
	}
	return t
}
