package models

import (
	"time"

	"github.com/uptrace/bun"
)

// LessonLog is one completion record. The id is a snowflake assigned by the
// caller, not a serial: log rows are inserted inside the collect transaction
// and the id must be known up front.
type LessonLog struct {
	bun.BaseModel `bun:"table:lesson_logs,alias:ll"`

	ID       int64 `bun:"id,pk" json:"id"`
	UserID   int64 `bun:"user_id,notnull" json:"user_id"`
	LessonID int64 `bun:"lesson_id,notnull" json:"lesson_id"`
	XP       int64 `bun:"xp,notnull" json:"xp"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
