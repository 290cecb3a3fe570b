package handlers

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	dbmodels "github.com/vantagelearn/lumen/lumen/database/models"
	"github.com/vantagelearn/lumen/lumen/progression"
	"github.com/vantagelearn/lumen/lumen/services"
	webmodels "github.com/vantagelearn/lumen/server/models"
	"github.com/vantagelearn/lumen/server/utils"
)

// questionView is a session question with grading fields stripped. Answers
// and hints never leave the server outside their dedicated endpoints.
type questionView struct {
	ID      int64    `json:"id"`
	Number  int      `json:"number"`
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
	Image   string   `json:"image,omitempty"`
}

func viewOf(q progression.SessionQuestion) questionView {
	return questionView{
		ID:      q.ID,
		Number:  q.Number,
		Type:    string(q.Type),
		Prompt:  q.Prompt,
		Options: q.Options,
		Image:   q.Image,
	}
}

func viewsOf(questions []progression.SessionQuestion) []questionView {
	views := make([]questionView, len(questions))
	for i, q := range questions {
		views[i] = viewOf(q)
	}
	return views
}

// ListLessons returns the lesson catalog, optionally filtered by subject
func ListLessons(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		subject := c.Query("subject")

		var (
			lessons []*dbmodels.Lesson
			err     error
		)
		if subject != "" {
			lessons, err = webApp.App.LessonRepository.GetBySubject(c.Context(), subject)
		} else {
			lessons, err = webApp.App.LessonRepository.GetAll(c.Context())
		}
		if err != nil {
			slog.Error("Failed to list lessons", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to list lessons")
		}
		return utils.SendSuccess(c, lessons, "")
	}
}

// GetLesson returns a single lesson by id
func GetLesson(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid lesson id", nil)
		}

		lesson, err := webApp.App.LessonRepository.GetByID(c.Context(), lessonID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Lesson not found")
			}
			return utils.SendInternalServerError(c, "Failed to load lesson")
		}
		return utils.SendSuccess(c, lesson, "")
	}
}

// StartLesson opens a lesson session for the signed-in user
func StartLesson(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		lessonID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid lesson id", nil)
		}

		sessionID, lessonSession, err := webApp.App.LessonService.StartSession(c.Context(), session.UserID, lessonID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				return utils.SendNotFound(c, "Lesson not found")
			case errors.Is(err, services.ErrLessonEmpty):
				return utils.SendUnprocessableEntity(c, "Lesson has no questions", nil)
			default:
				slog.Error("Failed to start lesson", slog.String("error", err.Error()))
				return utils.SendInternalServerError(c, "Failed to start lesson")
			}
		}

		return utils.SendCreated(c, fiber.Map{
			"session_id": sessionID,
			"lesson_id":  lessonSession.LessonID,
			"first_time": lessonSession.FirstTime,
			"questions":  viewsOf(lessonSession.Questions),
		}, "Lesson started")
	}
}

// AnswerLesson grades one answer inside an open lesson session
func AnswerLesson(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		sessionID := c.Params("session")

		var req webmodels.AnswerRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		correct, err := webApp.App.LessonService.Answer(c.Context(), session.UserID, sessionID, req.QuestionID, req.Answer)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return utils.SendNotFound(c, "Session not found")
			}
			slog.Error("Failed to grade answer", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to grade answer")
		}
		return utils.SendSuccess(c, fiber.Map{"correct": correct}, "")
	}
}

// CollectLesson closes a lesson session and pays out its rewards
func CollectLesson(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		sessionID := c.Params("session")

		result, err := webApp.App.LessonService.Collect(c.Context(), session.UserID, sessionID)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return utils.SendNotFound(c, "Session not found")
			}
			slog.Error("Failed to collect lesson", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to collect lesson")
		}
		return utils.SendSuccess(c, result, "Lesson completed")
	}
}

// SearchLessons fuzzy-searches the lesson catalog
func SearchLessons(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := c.Query("q")

		lessons, err := webApp.App.SearchService.SearchLessons(c.Context(), query)
		if err != nil {
			slog.Error("Failed to search lessons", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to search lessons")
		}
		return utils.SendSuccess(c, lessons, "")
	}
}
