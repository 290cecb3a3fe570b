package handlers

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	dbmodels "github.com/vantagelearn/lumen/lumen/database/models"
	webmodels "github.com/vantagelearn/lumen/server/models"
	"github.com/vantagelearn/lumen/server/utils"
)

// ListTimetable returns the user's weekly study slots
func ListTimetable(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		entries, err := webApp.App.TimetableRepository.ListByUser(c.Context(), session.UserID)
		if err != nil {
			slog.Error("Failed to list timetable", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to list timetable")
		}
		return utils.SendSuccess(c, entries, "")
	}
}

// CreateTimetableEntry adds a weekly study slot
func CreateTimetableEntry(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.TimetableEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if fields := utils.ValidateTimetableRequest(&req); fields != nil {
			return utils.SendUnprocessableEntity(c, "Validation failed", fields)
		}

		entry := &dbmodels.TimetableEntry{
			UserID:  session.UserID,
			Weekday: req.Weekday,
			Start:   req.Start,
			Minutes: req.Minutes,
			Subject: req.Subject,
			Topic:   req.Topic,
		}
		if err := webApp.App.TimetableRepository.Create(c.Context(), entry); err != nil {
			slog.Error("Failed to create timetable entry", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create timetable entry")
		}
		return utils.SendCreated(c, entry, "Timetable entry created")
	}
}

// UpdateTimetableEntry updates one of the user's study slots
func UpdateTimetableEntry(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		entryID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid entry id", nil)
		}

		var req webmodels.TimetableEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if fields := utils.ValidateTimetableRequest(&req); fields != nil {
			return utils.SendUnprocessableEntity(c, "Validation failed", fields)
		}

		entry := &dbmodels.TimetableEntry{
			ID:      entryID,
			UserID:  session.UserID,
			Weekday: req.Weekday,
			Start:   req.Start,
			Minutes: req.Minutes,
			Subject: req.Subject,
			Topic:   req.Topic,
		}
		if err := webApp.App.TimetableRepository.Update(c.Context(), entry); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Timetable entry not found")
			}
			slog.Error("Failed to update timetable entry", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update timetable entry")
		}
		return utils.SendSuccess(c, entry, "Timetable entry updated")
	}
}

// DeleteTimetableEntry removes one of the user's study slots
func DeleteTimetableEntry(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		entryID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid entry id", nil)
		}

		if err := webApp.App.TimetableRepository.Delete(c.Context(), entryID, session.UserID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Timetable entry not found")
			}
			slog.Error("Failed to delete timetable entry", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to delete timetable entry")
		}
		return utils.SendNoContent(c)
	}
}

// ListJournal returns the user's journal entries, newest first
func ListJournal(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		limit := c.QueryInt("limit", 50)
		if limit <= 0 || limit > 200 {
			limit = 50
		}

		entries, err := webApp.App.JournalRepository.ListByUser(c.Context(), session.UserID, limit)
		if err != nil {
			slog.Error("Failed to list journal", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to list journal")
		}
		return utils.SendSuccess(c, entries, "")
	}
}

// GetJournalEntry returns one of the user's journal entries
func GetJournalEntry(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		entryID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid entry id", nil)
		}

		entry, err := webApp.App.JournalRepository.GetByID(c.Context(), entryID, session.UserID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Journal entry not found")
			}
			return utils.SendInternalServerError(c, "Failed to load journal entry")
		}
		return utils.SendSuccess(c, entry, "")
	}
}

// CreateJournalEntry adds a journal entry
func CreateJournalEntry(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		var req webmodels.JournalEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if req.Title == "" {
			return utils.SendUnprocessableEntity(c, "Validation failed",
				map[string]string{"title": "Title is required"})
		}

		entry := &dbmodels.JournalEntry{
			UserID: session.UserID,
			Title:  req.Title,
			Body:   req.Body,
			Mood:   req.Mood,
		}
		if err := webApp.App.JournalRepository.Create(c.Context(), entry); err != nil {
			slog.Error("Failed to create journal entry", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to create journal entry")
		}
		return utils.SendCreated(c, entry, "Journal entry created")
	}
}

// UpdateJournalEntry updates one of the user's journal entries
func UpdateJournalEntry(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		entryID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid entry id", nil)
		}

		var req webmodels.JournalEntryRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}
		if req.Title == "" {
			return utils.SendUnprocessableEntity(c, "Validation failed",
				map[string]string{"title": "Title is required"})
		}

		entry := &dbmodels.JournalEntry{
			ID:     entryID,
			UserID: session.UserID,
			Title:  req.Title,
			Body:   req.Body,
			Mood:   req.Mood,
		}
		if err := webApp.App.JournalRepository.Update(c.Context(), entry); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Journal entry not found")
			}
			slog.Error("Failed to update journal entry", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to update journal entry")
		}
		return utils.SendSuccess(c, entry, "Journal entry updated")
	}
}

// DeleteJournalEntry removes one of the user's journal entries
func DeleteJournalEntry(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := currentSession(c)
		if !ok {
			return utils.SendUnauthorized(c, "Authentication required")
		}
		entryID, ok := paramInt64(c, "id")
		if !ok {
			return utils.SendBadRequest(c, "Invalid entry id", nil)
		}

		if err := webApp.App.JournalRepository.Delete(c.Context(), entryID, session.UserID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return utils.SendNotFound(c, "Journal entry not found")
			}
			slog.Error("Failed to delete journal entry", slog.String("error", err.Error()))
			return utils.SendInternalServerError(c, "Failed to delete journal entry")
		}
		return utils.SendNoContent(c)
	}
}
