package models

import (
	"time"
)

// UserSession represents a signed-in user for web authentication
type UserSession struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"is_admin"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SignUpRequest is the payload for account creation
type SignUpRequest struct {
	Email    string   `json:"email"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Subjects []string `json:"subjects,omitempty"`
}

// SignInRequest is the payload for password sign-in
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MagicLinkRequest asks for a sign-in link by mail
type MagicLinkRequest struct {
	Email string `json:"email"`
}

// TokenRedeemRequest redeems a magic-link or reset token
type TokenRedeemRequest struct {
	Token string `json:"token"`
}

// PasswordResetConfirmRequest sets a new password using a reset token
type PasswordResetConfirmRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// AnswerRequest is one graded answer inside a lesson session
type AnswerRequest struct {
	QuestionID int64  `json:"question_id"`
	Answer     string `json:"answer"`
}

// DrillStartRequest opens a practice drill
type DrillStartRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
	Count   int    `json:"count"`
}

// DrillAnswerRequest is one attempt at the current drill question
type DrillAnswerRequest struct {
	Answer string `json:"answer"`
}

// TimetableEntryRequest creates or updates a weekly study slot
type TimetableEntryRequest struct {
	Weekday int    `json:"weekday"`
	Start   string `json:"start"`
	Minutes int    `json:"minutes"`
	Subject string `json:"subject"`
	Topic   string `json:"topic,omitempty"`
}

// JournalEntryRequest creates or updates a journal entry
type JournalEntryRequest struct {
	Title string `json:"title"`
	Body  string `json:"body,omitempty"`
	Mood  string `json:"mood,omitempty"`
}

// LessonRequest creates or updates a lesson in the admin catalog
type LessonRequest struct {
	Subject    string   `json:"subject"`
	Topic      string   `json:"topic"`
	Title      string   `json:"title"`
	Desc       string   `json:"desc,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Diff       int      `json:"diff"`
}

// QuestionRequest creates or updates a question in the admin catalog
type QuestionRequest struct {
	LessonID int64    `json:"lesson_id"`
	Number   int      `json:"number"`
	Type     string   `json:"type"`
	Prompt   string   `json:"prompt"`
	Options  []string `json:"options,omitempty"`
	Answer   string   `json:"answer,omitempty"`
	Hint     string   `json:"hint,omitempty"`
	Image    string   `json:"image,omitempty"`
}

// SubjectsRequest replaces the user's chosen subjects
type SubjectsRequest struct {
	Subjects []string `json:"subjects"`
}

// DashboardStats summarizes the catalog for the admin dashboard
type DashboardStats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalLessons int64 `json:"total_lessons"`
}

// MissionView is one daily mission with the user's progress toward it
type MissionView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Target    int64  `json:"target"`
	Reward    int64  `json:"reward"`
	Progress  int64  `json:"progress"`
	Completed bool   `json:"completed"`
	Claimed   bool   `json:"claimed"`
}

// BadgeView is one badge with its earned state
type BadgeView struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Earned      bool   `json:"earned"`
}

// ClaimView is the outcome of a mission reward claim
type ClaimView struct {
	Claimed bool  `json:"claimed"`
	Reward  int64 `json:"reward"`
}

// DrillAnswerView is the outcome of one drill answer attempt
type DrillAnswerView struct {
	Accepted     bool `json:"accepted"`
	Correct      bool `json:"correct"`
	HintRequired bool `json:"hint_required"`
	Done         bool `json:"done"`
}

// MeResponse is the profile payload for the signed-in user
type MeResponse struct {
	UserID       int64     `json:"user_id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	IsAdmin      bool      `json:"is_admin"`
	XP           int64     `json:"xp"`
	Level        int       `json:"level"`
	Streak       int       `json:"streak"`
	Gold         int64     `json:"gold"`
	DailyXP      int64     `json:"daily_xp"`
	DailyLessons int       `json:"daily_lessons"`
	Subjects     []string  `json:"subjects"`
	LastLessonAt time.Time `json:"last_lesson_at,omitempty"`
}
