package models

import (
	"time"

	"github.com/uptrace/bun"
)

type TimetableEntry struct {
	bun.BaseModel `bun:"table:timetable_entries,alias:tt"`

	ID      int64  `bun:"id,pk,autoincrement" json:"id"`
	UserID  int64  `bun:"user_id,notnull" json:"user_id"`
	Weekday int    `bun:"weekday,notnull" json:"weekday"` // 0 = Sunday
	Start   string `bun:"start,notnull" json:"start"`     // "15:04"
	Minutes int    `bun:"minutes,notnull,default:30" json:"minutes"`
	Subject string `bun:"subject,notnull" json:"subject"`
	Topic   string `bun:"topic" json:"topic,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
