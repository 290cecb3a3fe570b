package models

import (
	"time"

	"github.com/uptrace/bun"
)

type JournalEntry struct {
	bun.BaseModel `bun:"table:journal_entries,alias:je"`

	ID     int64  `bun:"id,pk,autoincrement" json:"id"`
	UserID int64  `bun:"user_id,notnull" json:"user_id"`
	Title  string `bun:"title,notnull" json:"title"`
	Body   string `bun:"body" json:"body,omitempty"`
	Mood   string `bun:"mood" json:"mood,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
