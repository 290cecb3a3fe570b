package utils

import (
	"regexp"
	"strings"

	dbmodels "github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/server/models"
)

var (
	// ValidEmailRegex is deliberately loose; the mail round-trip is the
	// real verification.
	ValidEmailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	// ValidSubjectRegex validates subject and topic slugs
	ValidSubjectRegex = regexp.MustCompile(`^[a-z0-9\-_]+$`)

	// ValidStartTimeRegex validates "HH:MM" timetable starts
	ValidStartTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	// MinPasswordLength is the minimum accepted password length
	MinPasswordLength = 8
)

// ValidateSignUpRequest validates an account creation request
func ValidateSignUpRequest(req *models.SignUpRequest) map[string]string {
	details := make(map[string]string)

	if !ValidEmailRegex.MatchString(req.Email) {
		details["email"] = "A valid email address is required"
	}
	if strings.TrimSpace(req.Username) == "" {
		details["username"] = "Username is required"
	} else if len(req.Username) > 50 {
		details["username"] = "Username must be at most 50 characters"
	}
	if len(req.Password) < MinPasswordLength {
		details["password"] = "Password must be at least 8 characters"
	}
	for _, subject := range req.Subjects {
		if !ValidSubjectRegex.MatchString(subject) {
			details["subjects"] = "Subjects must be lowercase slugs"
			break
		}
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// ValidateLessonRequest validates a lesson create/update request
func ValidateLessonRequest(req *models.LessonRequest) map[string]string {
	details := make(map[string]string)

	if !ValidSubjectRegex.MatchString(req.Subject) {
		details["subject"] = "Subject must be a lowercase slug"
	}
	if !ValidSubjectRegex.MatchString(req.Topic) {
		details["topic"] = "Topic must be a lowercase slug"
	}
	if strings.TrimSpace(req.Title) == "" {
		details["title"] = "Title is required"
	} else if len(req.Title) > 200 {
		details["title"] = "Title must be at most 200 characters"
	}
	if req.Diff < 1 || req.Diff > 5 {
		details["diff"] = "Difficulty must be between 1 and 5"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// ValidateQuestionRequest validates a question create/update request
func ValidateQuestionRequest(req *models.QuestionRequest) map[string]string {
	details := make(map[string]string)

	if req.LessonID <= 0 {
		details["lesson_id"] = "Lesson id is required"
	}
	if req.Number < 1 {
		details["number"] = "Question number must be positive"
	}
	if strings.TrimSpace(req.Prompt) == "" {
		details["prompt"] = "Prompt is required"
	}

	switch req.Type {
	case dbmodels.QuestionTypeMultiple:
		if len(req.Options) < 2 {
			details["options"] = "Multiple choice needs at least two options"
		} else if !containsOption(req.Options, req.Answer) {
			details["answer"] = "Answer must be one of the options"
		}
	case dbmodels.QuestionTypeWrite:
		if strings.TrimSpace(req.Answer) == "" {
			details["answer"] = "Write-in questions need an answer"
		}
	case dbmodels.QuestionTypeText:
		// Informational, never graded.
	default:
		details["type"] = "Type must be multiple, write or text"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

// ValidateTimetableRequest validates a timetable slot request
func ValidateTimetableRequest(req *models.TimetableEntryRequest) map[string]string {
	details := make(map[string]string)

	if req.Weekday < 0 || req.Weekday > 6 {
		details["weekday"] = "Weekday must be 0 (Sunday) through 6 (Saturday)"
	}
	if !ValidStartTimeRegex.MatchString(req.Start) {
		details["start"] = "Start must be HH:MM"
	}
	if req.Minutes < 5 || req.Minutes > 480 {
		details["minutes"] = "Duration must be between 5 and 480 minutes"
	}
	if !ValidSubjectRegex.MatchString(req.Subject) {
		details["subject"] = "Subject must be a lowercase slug"
	}

	if len(details) == 0 {
		return nil
	}
	return details
}

func containsOption(options []string, answer string) bool {
	for _, option := range options {
		if option == answer {
			return true
		}
	}
	return false
}
