package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Lesson struct {
	bun.BaseModel `bun:"table:lessons,alias:l"`

	ID         int64    `bun:"id,pk,autoincrement" json:"id"`
	Subject    string   `bun:"subject,notnull" json:"subject"`
	Topic      string   `bun:"topic,notnull" json:"topic"`
	Title      string   `bun:"title,notnull" json:"title"`
	Desc       string   `bun:"description" json:"desc,omitempty"`
	Categories []string `bun:"categories,type:jsonb" json:"categories,omitempty"`
	Diff       int      `bun:"diff,notnull,default:1" json:"diff"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
