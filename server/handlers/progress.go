package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/vantagelearn/lumen/lumen/progression"
	webmodels "github.com/vantagelearn/lumen/server/models"
	"github.com/vantagelearn/lumen/server/utils"
)

// Me returns the signed-in user's profile with progress counters
func Me(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		user, err := webApp.App.ProgressService.CurrentUser(c.Context(), session.UserID)
		if err != nil {
			slog.Error("Failed to load profile", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load profile")
		}

		return utils.SendSuccess(c, &webmodels.MeResponse{
			UserID:       user.ID,
			Email:        user.Email,
			Username:     user.Username,
			IsAdmin:      user.IsAdmin,
			XP:           user.XP,
			Level:        progression.Level(user.XP),
			Streak:       user.Streak,
			Gold:         user.Gold,
			DailyXP:      user.DailyXPEarned,
			DailyLessons: user.DailyLessonsCompleted,
			Subjects:     user.Subjects,
			LastLessonAt: user.LastLessonAt,
		}, "")
	}
}

// Missions returns today's missions with progress
func Missions(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		statuses, err := webApp.App.ProgressService.Missions(c.Context(), session.UserID)
		if err != nil {
			slog.Error("Failed to load missions", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load missions")
		}

		views := make([]webmodels.MissionView, len(statuses))
		for i, status := range statuses {
			views[i] = webmodels.MissionView{
				ID:        status.ID,
				Title:     status.Title,
				Target:    status.Target,
				Reward:    status.Reward,
				Progress:  status.Progress,
				Completed: status.Completed,
				Claimed:   status.Claimed,
			}
		}
		return utils.SendSuccess(c, views, "")
	}
}

// ClaimMission claims a completed mission's reward
func ClaimMission(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		missionID := c.Params("id")
		if missionID == "" {
			return utils.SendBadRequest(c, "Mission id is required", nil)
		}

		result, err := webApp.App.ProgressService.ClaimMission(c.Context(), session.UserID, missionID)
		if err != nil {
			slog.Error("Failed to claim mission", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to claim mission")
		}
		// An unclaimable mission returns claimed=false rather than an error.
		return utils.SendSuccess(c, webmodels.ClaimView{Claimed: result.Claimed, Reward: result.Reward}, "")
	}
}

// Badges returns the user's badge states
func Badges(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		statuses, err := webApp.App.ProgressService.Badges(c.Context(), session.UserID)
		if err != nil {
			slog.Error("Failed to load badges", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load badges")
		}

		views := make([]webmodels.BadgeView, len(statuses))
		for i, status := range statuses {
			views[i] = webmodels.BadgeView{
				ID:          status.ID,
				Label:       status.Label,
				Description: status.Description,
				Earned:      status.Earned,
			}
		}
		return utils.SendSuccess(c, views, "")
	}
}

// UpdateSubjects replaces the user's chosen subjects
func UpdateSubjects(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.SubjectsRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		for _, subject := range req.Subjects {
			if !utils.ValidSubjectRegex.MatchString(subject) {
				return utils.SendUnprocessableEntity(c, "Validation failed",
					map[string]string{"subjects": "Subjects must be lowercase slugs"})
			}
		}

		user, err := webApp.App.UserRepository.GetByID(c.Context(), session.UserID)
		if err != nil {
			return utils.SendInternalServerError(c, "Failed to load user")
		}
		user.Subjects = req.Subjects
		if err := webApp.App.UserRepository.Update(c.Context(), user); err != nil {
			slog.Error("Failed to update subjects", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update subjects")
		}
		return utils.SendSuccess(c, user.Subjects, "Subjects updated")
	}
}

// Leaderboard returns the top users ranked by XP
func Leaderboard(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", 25)

		board, err := webApp.App.LeaderboardService.Top(c.Context(), limit)
		if err != nil {
			slog.Error("Failed to load leaderboard", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to load leaderboard")
		}
		return utils.SendSuccess(c, board, "")
	}
}
