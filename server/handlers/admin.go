package handlers

import (
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	dbmodels "github.com/vantagelearn/lumen/lumen/database/models"
	webmodels "github.com/vantagelearn/lumen/server/models"
	"github.com/vantagelearn/lumen/server/utils"
)

const maxImageSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// GetDashboardStats returns catalog totals for the admin dashboard
func GetDashboardStats(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var stats webmodels.DashboardStats

		g, ctx := errgroup.WithContext(c.Context())
		g.Go(func() error {
			count, err := webApp.App.UserRepository.GetUserCount(ctx)
			stats.TotalUsers = count
			return err
		})
		g.Go(func() error {
			count, err := webApp.App.LessonRepository.GetLessonCount(ctx)
			stats.TotalLessons = count
			return err
		})
		if err := g.Wait(); err != nil {
			slog.Error("Failed to load dashboard stats", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load dashboard stats")
		}
		return utils.SendSuccess(c, &stats, "")
	}
}

// CreateLesson adds a lesson to the catalog
func CreateLesson(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.LessonRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if fields := utils.ValidateLessonRequest(&req); fields != nil {
			return utils.SendUnprocessableEntity(c, "Validation failed", fields)
		}

		lesson := &dbmodels.Lesson{
			Subject:    strings.ToLower(req.Subject),
			Topic:      strings.ToLower(req.Topic),
			Title:      req.Title,
			Desc:       req.Desc,
			Categories: req.Categories,
			Diff:       req.Diff,
		}
		if err := webApp.App.LessonRepository.Create(c.Context(), lesson); err != nil {
			slog.Error("Failed to create lesson", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create lesson")
		}
		return utils.SendCreated(c, lesson, "Lesson created")
	}
}

// UpdateLesson updates a catalog lesson
func UpdateLesson(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid lesson id", nil)
		}

		var req webmodels.LessonRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if fields := utils.ValidateLessonRequest(&req); fields != nil {
			return utils.SendUnprocessableEntity(c, "Validation failed", fields)
		}

		lesson, err := webApp.App.LessonRepository.GetByID(c.Context(), lessonID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Lesson not found")
			}
			return utils.SendInternalServerError(c, "Failed to load lesson")
		}

		lesson.Subject = strings.ToLower(req.Subject)
		lesson.Topic = strings.ToLower(req.Topic)
		lesson.Title = req.Title
		lesson.Desc = req.Desc
		lesson.Categories = req.Categories
		lesson.Diff = req.Diff
		if err := webApp.App.LessonRepository.Update(c.Context(), lesson); err != nil {
			slog.Error("Failed to update lesson", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update lesson")
		}
		return utils.SendSuccess(c, lesson, "Lesson updated")
	}
}

// DeleteLesson removes a lesson and its questions
func DeleteLesson(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid lesson id", nil)
		}

		if err := webApp.App.LessonRepository.Delete(c.Context(), lessonID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Lesson not found")
			}
			slog.Error("Failed to delete lesson", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to delete lesson")
		}
		return utils.SendNoContent(c)
	}
}

// ListLessonQuestions returns all questions of a lesson, grading fields included
func ListLessonQuestions(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid lesson id", nil)
		}

		questions, err := webApp.App.QuestionRepository.GetByLessonID(c.Context(), lessonID)
		if err != nil {
			slog.Error("Failed to list questions", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to list questions")
		}
		return utils.SendSuccess(c, questions, "")
	}
}

// CreateQuestion adds a question to a lesson
func CreateQuestion(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req webmodels.QuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if fields := utils.ValidateQuestionRequest(&req); fields != nil {
			return utils.SendUnprocessableEntity(c, "Validation failed", fields)
		}

		if _, err := webApp.App.LessonRepository.GetByID(c.Context(), req.LessonID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Lesson not found")
			}
			return utils.SendInternalServerError(c, "Failed to load lesson")
		}

		question := &dbmodels.Question{
			LessonID: req.LessonID,
			Number:   req.Number,
			Type:     req.Type,
			Prompt:   req.Prompt,
			Options:  req.Options,
			Answer:   req.Answer,
			Hint:     req.Hint,
			Image:    req.Image,
		}
		if err := webApp.App.QuestionRepository.Create(c.Context(), question); err != nil {
			slog.Error("Failed to create question", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create question")
		}
		return utils.SendCreated(c, question, "Question created")
	}
}

// UpdateQuestion updates a catalog question
func UpdateQuestion(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid question id", nil)
		}

		var req webmodels.QuestionRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if fields := utils.ValidateQuestionRequest(&req); fields != nil {
			return utils.SendUnprocessableEntity(c, "Validation failed", fields)
		}

		question, err := webApp.App.QuestionRepository.GetByID(c.Context(), questionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Question not found")
			}
			return utils.SendInternalServerError(c, "Failed to load question")
		}

		question.LessonID = req.LessonID
		question.Number = req.Number
		question.Type = req.Type
		question.Prompt = req.Prompt
		question.Options = req.Options
		question.Answer = req.Answer
		question.Hint = req.Hint
		question.Image = req.Image
		if err := webApp.App.QuestionRepository.Update(c.Context(), question); err != nil {
			slog.Error("Failed to update question", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update question")
		}
		return utils.SendSuccess(c, question, "Question updated")
	}
}

// DeleteQuestion removes a catalog question
func DeleteQuestion(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid question id", nil)
		}

		if err := webApp.App.QuestionRepository.Delete(c.Context(), questionID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Question not found")
			}
			slog.Error("Failed to delete question", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to delete question")
		}
		return utils.SendNoContent(c)
	}
}

// GetNumberConflicts lists question numbers that repeat with diverging prompts
func GetNumberConflicts(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid lesson id", nil)
		}

		conflicts, err := webApp.App.QuestionRepository.FindNumberConflicts(c.Context(), lessonID)
		if err != nil {
			slog.Error("Failed to find number conflicts", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to find number conflicts")
		}
		return utils.SendSuccess(c, conflicts, "")
	}
}

// SearchQuestions fuzzy-searches a lesson's question prompts
func SearchQuestions(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lessonID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid lesson id", nil)
		}
		query := c.Query("q")

		questions, err := webApp.App.SearchService.SearchQuestions(c.Context(), lessonID, query)
		if err != nil {
			slog.Error("Failed to search questions", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to search questions")
		}
		return utils.SendSuccess(c, questions, "")
	}
}

// UploadQuestionImage stores a question illustration and records its URL
func UploadQuestionImage(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if webApp.App.SpacesService == nil {
			return utils.SendError(c, fiber.StatusServiceUnavailable, "STORAGE_DISABLED",
				"Image storage is not configured", nil)
		}

		questionID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid question id", nil)
		}

		question, err := webApp.App.QuestionRepository.GetByID(c.Context(), questionID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Question not found")
			}
			return utils.SendInternalServerError(c, "Failed to load question")
		}

		file, err := c.FormFile("image")
		if err != nil {
			return utils.SendBadRequest(c, "Image file is required", nil)
		}
		if file.Size > maxImageSize {
			return utils.SendUnprocessableEntity(c, "File too large (max 10MB)", nil)
		}
		contentType := file.Header.Get("Content-Type")
		ext, allowed := allowedImageTypes[contentType]
		if !allowed {
			return utils.SendUnprocessableEntity(c, "Invalid file type (only images allowed)", nil)
		}
		if named := strings.TrimPrefix(strings.ToLower(filepath.Ext(file.Filename)), "."); named != "" && named != "jpeg" {
			ext = named
		}

		src, err := file.Open()
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to open file")
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to read file")
		}

		url, err := webApp.App.SpacesService.UploadQuestionImage(c.Context(), question.LessonID, question.ID, ext, contentType, data)
		if err != nil {
			slog.Error("Failed to upload question image", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to upload question image")
		}

		question.Image = url
		if err := webApp.App.QuestionRepository.Update(c.Context(), question); err != nil {
			slog.Error("Failed to record question image", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to record question image")
		}
		return utils.SendSuccess(c, fiber.Map{"image": url}, "Image uploaded")
	}
}
