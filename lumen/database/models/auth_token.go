package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Auth token purposes
const (
	TokenPurposeMagicLink     = "magic_link"
	TokenPurposePasswordReset = "password_reset"
)

// AuthToken is a single-use token backing magic-link sign-in and password
// resets. Consumption is recorded rather than deleting the row, so repeated
// use of the same link can be distinguished from an unknown token.
type AuthToken struct {
	bun.BaseModel `bun:"table:auth_tokens,alias:at"`

	Token   string `bun:"token,pk"`
	UserID  int64  `bun:"user_id,notnull"`
	Purpose string `bun:"purpose,notnull"`

	ExpiresAt  time.Time  `bun:"expires_at,notnull"`
	ConsumedAt *time.Time `bun:"consumed_at"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp"`
}
