package migration

import (
	"strings"
	"time"

	"github.com/vantagelearn/lumen/lumen/database/models"
)

func lessonKey(legacy LegacyLesson) string {
	if legacy.Key != "" {
		return legacy.Key
	}
	return strings.ToLower(legacy.Subject + "/" + legacy.Topic + "/" + legacy.Title)
}

func convertLesson(legacy LegacyLesson) *models.Lesson {
	diff := int(legacy.Diff)
	if diff < 1 {
		diff = 1
	}
	return &models.Lesson{
		Subject:    strings.ToLower(legacy.Subject),
		Topic:      strings.ToLower(legacy.Topic),
		Title:      legacy.Title,
		Desc:       legacy.Desc,
		Categories: legacy.Categories,
		Diff:       diff,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func convertQuestion(legacy LegacyQuestion, lessonID int64) *models.Question {
	qType := legacy.Type
	switch qType {
	case models.QuestionTypeMultiple, models.QuestionTypeWrite, models.QuestionTypeText:
	default:
		// The old backend used "choice" for multiple choice.
		if qType == "choice" {
			qType = models.QuestionTypeMultiple
		} else {
			qType = models.QuestionTypeText
		}
	}
	return &models.Question{
		LessonID:  lessonID,
		Number:    int(legacy.Number),
		Type:      qType,
		Prompt:    legacy.Question,
		Options:   legacy.Options,
		Answer:    legacy.Answer,
		Hint:      legacy.Hint,
		Image:     legacy.Image,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func convertUser(legacy LegacyUser) *models.User {
	now := time.Now()
	created := legacy.Joined
	if created.IsZero() {
		created = now
	}
	return &models.User{
		Email:                 strings.ToLower(legacy.Email),
		Username:              legacy.Username,
		PasswordHash:          legacy.PasswordHash,
		IsAdmin:               legacy.Admin,
		XP:                    int64(legacy.XP),
		Streak:                int(legacy.Streak),
		Gold:                  int64(legacy.Gold),
		DailyXPEarned:         int64(legacy.DailyXP),
		DailyLessonsCompleted: int(legacy.DailyLessons),
		CompletedMissions:     legacy.ClaimedToday,
		Subjects:              legacy.Subjects,
		LastMissionReset:      legacy.LastReset,
		LastLessonAt:          legacy.LastLesson,
		CreatedAt:             created,
		UpdatedAt:             now,
	}
}
