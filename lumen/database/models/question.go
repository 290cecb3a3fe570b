package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Question type constants
const (
	QuestionTypeMultiple = "multiple"
	QuestionTypeWrite    = "write"
	QuestionTypeText     = "text"
)

// Question is one authored question row. Several rows may share the same
// Number within a lesson; those are randomized variants, one of which is
// picked per session. The admin API surfaces the duplicates to authors.
type Question struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	ID       int64    `bun:"id,pk,autoincrement" json:"id"`
	LessonID int64    `bun:"lesson_id,notnull" json:"lesson_id"`
	Number   int      `bun:"number,notnull" json:"number"`
	Type     string   `bun:"type,notnull" json:"type"`
	Prompt   string   `bun:"question,notnull" json:"prompt"`
	Options  []string `bun:"options,type:jsonb" json:"options,omitempty"`
	Answer   string   `bun:"answer" json:"answer,omitempty"`
	Hint     string   `bun:"hint" json:"hint,omitempty"`
	Image    string   `bun:"image" json:"image,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}
