package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/vantagelearn/lumen/lumen/services"
	webmodels "github.com/vantagelearn/lumen/server/models"
	"github.com/vantagelearn/lumen/server/utils"
)

// StartDrill opens a practice drill over a subject/topic pool
func StartDrill(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.DrillStartRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if req.Subject == "" {
			return utils.SendUnprocessableEntity(c, "Validation failed",
				map[string]string{"subject": "Subject is required"})
		}

		sessionID, drill, err := webApp.App.DrillService.Start(c.Context(), session.UserID, req.Subject, req.Topic, req.Count)
		if err != nil {
			if errors.Is(err, services.ErrNoDrillQuestions) {
				return utils.SendUnprocessableEntity(c, "No questions available for this drill", nil)
			}
			slog.Error("Failed to start drill", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to start drill")
		}

		return utils.SendCreated(c, fiber.Map{
			"session_id": sessionID,
			"questions":  len(drill.Questions),
		}, "Drill started")
	}
}

// DrillCurrent returns the question the drill is waiting on
func DrillCurrent(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		sessionID := c.Params("session")

		question, done, err := webApp.App.DrillService.Current(c.Context(), session.UserID, sessionID)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return utils.SendNotFound(c, "Session not found")
			}
			return utils.SendInternalServerError(c, "Failed to load drill question")
		}
		if done {
			return utils.SendSuccess(c, fiber.Map{"done": true}, "")
		}
		return utils.SendSuccess(c, fiber.Map{"done": false, "question": viewOf(question)}, "")
	}
}

// DrillAnswer grades one attempt at the current drill question
func DrillAnswer(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		sessionID := c.Params("session")

		var req webmodels.DrillAnswerRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		result, err := webApp.App.DrillService.Answer(c.Context(), session.UserID, sessionID, req.Answer)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return utils.SendNotFound(c, "Session not found")
			}
			slog.Error("Failed to grade drill answer", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to grade drill answer")
		}
		return utils.SendSuccess(c, webmodels.DrillAnswerView{
			Accepted:     result.Accepted,
			Correct:      result.Correct,
			HintRequired: result.HintRequired,
			Done:         result.Done,
		}, "")
	}
}

// DrillHint reveals the current question's hint and unlocks the attempt
func DrillHint(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		sessionID := c.Params("session")

		hint, err := webApp.App.DrillService.Hint(c.Context(), session.UserID, sessionID)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return utils.SendNotFound(c, "Session not found")
			}
			return utils.SendInternalServerError(c, "Failed to load hint")
		}
		return utils.SendSuccess(c, fiber.Map{"hint": hint}, "")
	}
}

// DrillFinish closes the drill and returns its summary
func DrillFinish(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		sessionID := c.Params("session")

		summary, err := webApp.App.DrillService.Finish(c.Context(), session.UserID, sessionID)
		if err != nil {
			if errors.Is(err, services.ErrSessionNotFound) {
				return utils.SendNotFound(c, "Session not found")
			}
			slog.Error("Failed to finish drill", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to finish drill")
		}
		return utils.SendSuccess(c, summary, "Drill finished")
	}
}
