package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64  `bun:"id,pk,autoincrement" json:"id"`
	Email        string `bun:"email,notnull,unique" json:"email"`
	Username     string `bun:"username,notnull" json:"username"`
	PasswordHash string `bun:"password_hash" json:"-"`
	IsAdmin      bool   `bun:"is_admin,notnull,default:false" json:"is_admin"`

	// Progress counters
	XP                    int64 `bun:"xp,notnull,default:0" json:"xp"`
	Streak                int   `bun:"streak,notnull,default:0" json:"streak"`
	Gold                  int64 `bun:"gold,notnull,default:0" json:"gold"`
	DailyXPEarned         int64 `bun:"daily_xp_earned,notnull,default:0" json:"daily_xp_earned"`
	DailyLessonsCompleted int   `bun:"daily_lessons_completed,notnull,default:0" json:"daily_lessons_completed"`

	// Arrays stored as JSONB
	CompletedMissions []string `bun:"completed_missions,type:jsonb" json:"completed_missions,omitempty"`
	Subjects          []string `bun:"subjects,type:jsonb" json:"subjects,omitempty"`

	LastMissionReset time.Time `bun:"last_mission_reset,nullzero" json:"last_mission_reset,omitempty"`
	LastLessonAt     time.Time `bun:"last_lesson_at,nullzero" json:"last_lesson_at,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
